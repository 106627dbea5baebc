package pagenav

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// RawPager is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - 1-based page number to return. Ignored when PageToken is set.
	Page int `json:"page"`
	// PerPage - maximum number of records to return in the response.
	PerPage int `json:"perPage"`
	// PageToken - base64-encoded page marker obtained via PageToken.String().
	// If empty, Page (or the first page) is used.
	PageToken string `json:"pageToken"`
}

// Decode converts RawPager into *Pager, normalizing PerPage and Page and
// validating PageToken. Returns *Pager with WithSort applied.
func (p RawPager) Decode(orderBy ...OrderBy) (*Pager, error) {
	page := NormalizePage(p.Page)

	token, err := DecodePageToken(p.PageToken)
	if err != nil {
		return nil, err
	}
	if token != nil {
		page = token.Page()
	}

	return (&Pager{
		siblings: DefaultSiblings,
	}).WithSubstitutedSort(orderBy...).WithPerPage(p.PerPage).WithPage(page), nil
}

// Pager orchestrates numbered LIMIT/OFFSET pagination: it validates the
// requested page, applies sorting and the page offset to GORM queries, and
// carries the sibling count used to compute the rendered page window.
type Pager struct {
	page     int
	perPage  int
	siblings int
	sort     Orderings
}

func NewPager() *Pager {
	return &Pager{
		page:     1,
		siblings: DefaultSiblings,
	}
}

// WithPage sets the 1-based page number. Non-positive values map to the
// first page.
func (p *Pager) WithPage(page int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.page = NormalizePage(page)

	return p
}

// WithUnlimited allows returning all records as a single page.
func (p *Pager) WithUnlimited() *Pager {
	if p == nil {
		p = NewPager()
	}

	p.perPage = NoLimit

	return p
}

// WithPerPage sets the maximum number of returned records per page.
//
// IMPORTANT:
//   - If perPage is not NoLimit, NormalizePerPage will be applied.
func (p *Pager) WithPerPage(perPage int) *Pager {
	if p == nil {
		p = NewPager()
	}

	if perPage == NoLimit {
		return p.WithUnlimited()
	}
	p.perPage = NormalizePerPage(perPage)

	return p
}

// WithSiblings sets the number of page-number buttons shown on each side of
// the current page in the computed window. Negative values map to zero.
func (p *Pager) WithSiblings(siblings int) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.siblings = max(siblings, 0)

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *Pager) WithSubstitutedSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = NewPager()
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones.
// Order is preserved as if calling:
//
//	OrderBy(o1).ThenBy(o2).ThenBy(o3)...
func (p *Pager) WithSort(orderBy ...OrderBy) *Pager {
	if p == nil {
		p = NewPager()
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		// Remove previous occurrence (avoid duplication).
		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// Paginate applies pagination to the dataset. Returns an error if pagination
// cannot be applied.
func (p *Pager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if p == nil {
		p = NewPager()
	}

	err := p.validate()
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db)

	// An unlimited pager returns the whole dataset as a single page.
	if p.perPage != NoLimit {
		db = db.Offset(p.GetOffset()).Limit(p.perPage)
	}

	return db, nil
}

// GetSort returns orderings that will be applied to the dataset.
func (p *Pager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

// IsUnlimited returns true if perPage equals NoLimit (unbounded number of records).
func (p *Pager) IsUnlimited() bool {
	if p == nil {
		return false
	}

	return p.perPage == NoLimit
}

// GetPage returns the 1-based page number. A zero-value pager is on the
// first page.
func (p *Pager) GetPage() int {
	if p == nil {
		return 1
	}

	return NormalizePage(p.page)
}

// GetPerPage returns perPage as it is stored in Pager.
// Returning NoLimit is equivalent to no limit.
func (p *Pager) GetPerPage() int {
	if p == nil {
		return 0
	}

	return p.perPage
}

// GetSiblings returns the sibling count used for window computation.
func (p *Pager) GetSiblings() int {
	if p == nil {
		return DefaultSiblings
	}

	return p.siblings
}

// GetOffset returns the number of records skipped before the requested page:
// (page-1) * perPage, or 0 for an unlimited pager.
func (p *Pager) GetOffset() int {
	if p == nil || p.perPage == NoLimit {
		return 0
	}

	return (p.GetPage() - 1) * p.perPage
}

// Token returns the page token addressing the pager's current page.
func (p *Pager) Token() *PageToken {
	return NewPageToken(p.GetPage())
}

func (p *Pager) validate() error {
	if p == nil {
		return fmt.Errorf("pager is nil")
	}

	if p.page < 1 {
		return fmt.Errorf("invalid page number %d", p.page)
	}

	if p.perPage != NoLimit && p.perPage <= 0 {
		return fmt.Errorf("invalid perPage value %d", p.perPage)
	}

	if p.siblings < 0 {
		return fmt.Errorf("invalid sibling count %d", p.siblings)
	}

	return p.sort.validate()
}
