// Package pagination provides limit/offset pagination parameters for list
// endpoints and a paged response envelope.
package pagination

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Params carries the pagination query parameters of a list request.
// A zero Limit means "all matching records".
type Params struct {
	Limit  int `query:"limit"  json:"limit"`
	Offset int `query:"offset" json:"offset"`
}

// Normalize clamps the parameters to sane bounds. A negative limit falls back
// to the default page size, a limit above the cap is reduced to it and a
// negative offset becomes zero. Limit zero is preserved: it is the documented
// "no pagination" value.
func (p *Params) Normalize() {
	if p.Limit < 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Unlimited reports whether the request asked for all matching records.
func (p *Params) Unlimited() bool {
	return p.Limit == 0
}

// Response is a paged response envelope.
type Response[T any] struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
	Items      []T   `json:"items"`
}

// NewResponse builds a paged response from items and total count.
func NewResponse[T any](items []T, totalCount int64, p Params) Response[T] {
	return Response[T]{
		Limit:      p.Limit,
		Offset:     p.Offset,
		TotalCount: totalCount,
		Items:      items,
	}
}
