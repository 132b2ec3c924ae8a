package domain

// PageRequest holds offset-based paging as exposed by the API (from, size).
type PageRequest struct {
	From int
	Size int
}

// Offset returns the row offset of the page that contains From.
// Paging is page-aligned: from=15,size=10 selects rows 10..19.
func (p PageRequest) Offset() int {
	if p.Size < 1 || p.From < 0 {
		return 0
	}
	return (p.From / p.Size) * p.Size
}

// Limit returns the page size.
func (p PageRequest) Limit() int {
	return p.Size
}
