package core

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

type (
	// ListQuery shapes a paginated list request.
	// Filters maps field name -> value; empty values are not transmitted.
	// Sort is passed to the remote API verbatim: a bare field name sorts
	// ascending, a "-"-prefixed field name sorts descending.
	ListQuery struct {
		Page    int
		PerPage int
		Filters map[string]string
		Sort    string
	}

	// PageMeta is the pagination metadata echoed back by the remote API.
	PageMeta struct {
		CurrentPage int `json:"current_page"`
		From        int `json:"from"`
		LastPage    int `json:"last_page"`
		PerPage     int `json:"per_page"`
		To          int `json:"to"`
		Total       int `json:"total"`
	}

	PageLinks struct {
		First string  `json:"first"`
		Last  string  `json:"last"`
		Prev  *string `json:"prev"`
		Next  *string `json:"next"`
	}

	// Page is one page of records plus its pagination metadata.
	Page[T any] struct {
		Data  []T
		Meta  PageMeta
		Links PageLinks
	}
)

// Clean normalizes the query in place: out-of-range page numbers fall back
// to the defaults and filter values are trimmed.
func (q *ListQuery) Clean() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	for field, val := range q.Filters {
		q.Filters[field] = CleanString(val)
	}
	q.Sort = CleanString(q.Sort)
}
