package feed

import "encoding/json"

// Response is the feed endpoint's envelope.
type Response struct {
	Status  string       `json:"status"`
	Data    ResponseData `json:"data"`
	Message *string      `json:"message,omitempty"`
}

// ResponseData carries the decoded items and the paging block.
type ResponseData struct {
	Items  []Item `json:"items"`
	Paging Paging `json:"paging"`
}

// Paging describes the position of the current page. NextObject is an
// opaque cursor, present only when a next page exists; feed it back
// through Filters.StartFrom to fetch that page.
type Paging struct {
	TotalRowsInPage uint64  `json:"total_rows_in_page"`
	HasNextPage     bool    `json:"has_next_page"`
	NextObject      *string `json:"next_object,omitempty"`
}

// UnmarshalJSON decodes the items array through the structural
// variant matcher, preserving input order.
func (d *ResponseData) UnmarshalJSON(b []byte) error {
	var raw struct {
		Items  []json.RawMessage `json:"items"`
		Paging Paging            `json:"paging"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	items := make([]Item, len(raw.Items))
	for i, r := range raw.Items {
		item, err := decodeItem(r)
		if err != nil {
			return &DecodeError{Index: i, Err: err}
		}
		items[i] = item
	}

	d.Items = items
	d.Paging = raw.Paging
	return nil
}
