package pagenav

// Entry is a single page indicator inside a Window: either a 1-based page
// number or the Ellipsis marker standing in for a gap of omitted pages.
type Entry int

// Ellipsis marks a gap of omitted page numbers inside a Window.
const Ellipsis Entry = -1

// IsEllipsis reports whether the entry is the Ellipsis marker.
func (e Entry) IsEllipsis() bool {
	return e == Ellipsis
}

// Page returns the page number held by the entry, or 0 for Ellipsis.
func (e Entry) Page() int {
	if e.IsEllipsis() {
		return 0
	}

	return int(e)
}

// Window is the bounded, ordered sequence of page indicators a pager control
// renders. Numeric entries are strictly increasing, no two ellipses are
// adjacent, and whenever an ellipsis is present the window starts at page 1
// and ends at the last page.
type Window []Entry

// TotalPages returns the number of pages needed to hold totalCount items at
// perPage items per page. Returns 0 for an empty dataset or perPage <= 0.
func TotalPages(totalCount int64, perPage int) int {
	if totalCount <= 0 || perPage <= 0 {
		return 0
	}

	return int((totalCount + int64(perPage) - 1) / int64(perPage))
}

// ComputeWindow computes the page window for a pager control.
//
// The window contains at most 5+2*siblings entries: the first page, the last
// page, the current page with `siblings` neighbors on each side, and up to two
// ellipsis slots. Small datasets that fit entirely are returned without
// ellipses.
//
// currentPage is taken as-is; callers are expected to clamp it to
// [1, TotalPages] (see ClampPage) before or after calling. An empty dataset
// or a non-positive perPage yields an empty window.
func ComputeWindow(totalCount int64, perPage, currentPage, siblings int) Window {
	if siblings < 0 {
		siblings = 0
	}

	totalPages := TotalPages(totalCount, perPage)
	if totalPages == 0 {
		return nil
	}

	span := 5 + 2*siblings
	if totalPages <= span {
		return pageRange(1, totalPages)
	}

	leftSibling := max(currentPage-siblings, 1)
	rightSibling := min(currentPage+siblings, totalPages)

	showLeftDots := leftSibling > 2
	showRightDots := rightSibling < totalPages-1

	// The solid run on either edge: first/current/siblings plus the slot the
	// hidden ellipsis would have occupied.
	edgeRun := 3 + 2*siblings

	switch {
	case !showLeftDots && showRightDots:
		w := pageRange(1, edgeRun)
		return append(w, Ellipsis, Entry(totalPages))
	case showLeftDots && !showRightDots:
		w := Window{1, Ellipsis}
		return append(w, pageRange(totalPages-edgeRun+1, totalPages)...)
	case showLeftDots && showRightDots:
		w := Window{1, Ellipsis}
		w = append(w, pageRange(leftSibling, rightSibling)...)
		return append(w, Ellipsis, Entry(totalPages))
	default:
		return pageRange(1, totalPages)
	}
}

// JumpTarget returns the page a pager should jump to when the entry at index
// i is clicked. For a numeric entry that is the entry's own page. For an
// ellipsis it is the midpoint of the neighboring page numbers, found by
// scanning outwards for the nearest numeric entries; the mean is rounded
// down. Returns 0 when i is out of range or no target can be derived.
func (w Window) JumpTarget(i int) int {
	if i < 0 || i >= len(w) {
		return 0
	}

	if !w[i].IsEllipsis() {
		return w[i].Page()
	}

	left, right := 0, 0
	for j := i - 1; j >= 0; j-- {
		if !w[j].IsEllipsis() {
			left = w[j].Page()
			break
		}
	}
	for j := i + 1; j < len(w); j++ {
		if !w[j].IsEllipsis() {
			right = w[j].Page()
			break
		}
	}

	if left == 0 || right == 0 {
		return 0
	}

	return (left + right) / 2
}

// Pages returns the numeric entries of the window in order, skipping ellipses.
func (w Window) Pages() []int {
	ret := make([]int, 0, len(w))
	for _, e := range w {
		if !e.IsEllipsis() {
			ret = append(ret, e.Page())
		}
	}

	return ret
}

// Contains reports whether the window carries page as a numeric entry.
func (w Window) Contains(page int) bool {
	for _, e := range w {
		if !e.IsEllipsis() && e.Page() == page {
			return true
		}
	}

	return false
}

func pageRange(from, to int) Window {
	if to < from {
		return nil
	}

	ret := make(Window, 0, to-from+1)
	for p := from; p <= to; p++ {
		ret = append(ret, Entry(p))
	}

	return ret
}
