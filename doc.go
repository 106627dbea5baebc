package pagenav

// Package pagenav provides numbered-page pagination primitives for GORM.
//
// Overview
//
// pagenav implements classic page/perPage pagination together with the
// bounded page window a pager control renders:
//   - ComputeWindow: computes the ordered sequence of page numbers and
//     ellipsis markers for a pager, keeping the first page, the last page
//     and the current page's neighborhood reachable regardless of dataset
//     size.
//   - Pager: orchestrates LIMIT/OFFSET pagination, sorting and validation
//     for GORM queries.
//   - PageToken: an opaque base64-encoded page marker for API payloads.
//
// Key concepts
//   - Window: the bounded list of page indicators (numbers + ellipses) shown
//     by a pager UI.
//   - Sibling count: number of page-number buttons shown immediately adjacent
//     to the current page on each side.
//   - Orderings: defines multi-column ordering with explicit directions.
//
// See README for examples and usage details.
