package notehub

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

// HasNext reports whether there are results beyond the page that
// returned count results at the pagination's offset.
func (p Pagination) HasNext(count int) bool {
	return p.Total > p.Offset+uint64(count)
}
