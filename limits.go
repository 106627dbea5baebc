package pagenav

const (
	NoLimit         = -1
	MaxPerPage      = 100
	DefaultPerPage  = 10
	DefaultSiblings = 1
)

func IsNormalizedPerPageMax(perPage int, maxPerPage int) (int, bool) {
	if perPage <= 0 {
		return DefaultPerPage, false
	} else if perPage > maxPerPage {
		return maxPerPage, false
	}

	return perPage, true
}

func NormalizePerPageMax(perPage int, maxPerPage int) int {
	ret, _ := IsNormalizedPerPageMax(perPage, maxPerPage)
	return ret
}

func NormalizePerPage(perPage int) int {
	return NormalizePerPageMax(perPage, MaxPerPage)
}

// NormalizePage maps non-positive page numbers to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// ClampPage clamps page into [1, totalPages]. A totalPages of zero clamps
// everything to 1 so that callers can always render "page 1 of 0" states.
func ClampPage(page int, totalPages int) int {
	page = NormalizePage(page)
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}

	return page
}
