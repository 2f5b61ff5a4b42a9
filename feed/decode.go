package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownShape reports a feed element whose fields match none of
// the published transaction shapes.
var ErrUnknownShape = errors.New("no known transaction shape matched")

// DecodeError reports a response body that could not be decoded into
// the feed envelope. Index is the position of the offending item in
// data.items, or -1 when the envelope itself is malformed.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode feed response: %v", e.Err)
	}
	return fmt.Sprintf("decode feed item %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeResponse decodes a raw feed response body. Decoding is
// all-or-nothing: one unmatchable item fails the whole response so
// that unknown future shapes surface instead of being dropped.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, &DecodeError{Index: -1, Err: err}
	}
	return &resp, nil
}

var nullLiteral = []byte("null")

// decodeItem matches one raw feed element against the variant table,
// in order, and decodes it as the first shape whose mandatory fields
// all bind.
func decodeItem(raw json.RawMessage) (Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	for _, schema := range variantSchemas {
		if !hasRequired(fields, schema.required) {
			continue
		}
		item, err := schema.decode(raw)
		if err != nil {
			// Mandatory fields are present but some field has the
			// wrong type for this shape; keep trying.
			continue
		}
		return item, nil
	}

	return nil, ErrUnknownShape
}

// hasRequired reports whether every mandatory field is present and
// non-null. encoding/json leaves value-typed struct fields untouched
// on JSON null, so null must be rejected here to keep mandatory
// fields from silently binding zero values.
func hasRequired(fields map[string]json.RawMessage, required []string) bool {
	for _, name := range required {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), nullLiteral) {
			return false
		}
	}
	return true
}
