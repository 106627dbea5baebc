package pagenav

import (
	"github.com/samber/lo"
)

// PageResult is a generic paginated result container for numbered pages.
type PageResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements in the dataset.
	Total int64
	// Page 1-based number of the returned page.
	Page int
	// PerPage effective page size used for the query.
	PerPage int
	// TotalPages number of pages in the dataset.
	TotalPages int
	// Window page indicators for the pager control.
	Window Window
}

// BuildPageResult assembles a PageResult from the pager that produced the
// query, the fetched items and the dataset total. The page window is computed
// with the pager's sibling count; for an unlimited pager the whole dataset is
// a single page.
func BuildPageResult[T any](p *Pager, items []T, total int64) *PageResult[T] {
	perPage := p.GetPerPage()

	var totalPages int
	var window Window
	if p.IsUnlimited() {
		totalPages = lo.Ternary(total > 0, 1, 0)
		window = ComputeWindow(total, lo.Ternary(total > 0, int(total), 1), 1, p.GetSiblings())
	} else {
		totalPages = TotalPages(total, perPage)
		window = ComputeWindow(total, perPage, p.GetPage(), p.GetSiblings())
	}

	return &PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       p.GetPage(),
		PerPage:    perPage,
		TotalPages: totalPages,
		Window:     window,
	}
}

// NextPageToken returns the token for the page after the returned one, or nil
// when the returned page is the last page of the dataset.
func (r *PageResult[T]) NextPageToken() *PageToken {
	if r == nil || r.Page >= r.TotalPages {
		return nil
	}

	return NewPageToken(r.Page + 1)
}

// PrevPageToken returns the token for the page before the returned one, or
// nil when the returned page is the first page. The first page's token is the
// empty token by convention (see PageToken).
func (r *PageResult[T]) PrevPageToken() *PageToken {
	if r == nil || r.Page <= 1 || r.TotalPages == 0 {
		return nil
	}

	return NewPageToken(min(r.Page-1, r.TotalPages))
}

// IsLastPage reports whether the returned page is the final page of the
// dataset. An empty dataset counts as its own last page.
func (r *PageResult[T]) IsLastPage() bool {
	if r == nil {
		return true
	}

	return r.Page >= r.TotalPages
}
