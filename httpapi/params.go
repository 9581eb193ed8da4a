package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/siakad-id/siakad/core"
)

// listParams renders a ListQuery as outgoing query parameters.
// Filters become filter[<field>]=<value> with empty values dropped; the
// sort key is transmitted verbatim (the remote API parses the "-" prefix
// itself) and omitted entirely when empty.
func listParams(q core.ListQuery) url.Values {
	params := make(url.Values, len(q.Filters)+3)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))
	for field, val := range q.Filters {
		if val == "" {
			continue
		}
		params.Set(fmt.Sprintf("filter[%s]", field), val)
	}
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}
	return params
}
