package document

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

/* Document is an opaque structured value: rule conditions, action templates,
 * trigger contexts and event payloads are all documents.
 * Rule authors define arbitrary shapes, so no fixed schema is imposed.
 */
type Document map[string]any

// Get returns the value stored under key
func (d Document) Get(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[key]
	return v, ok
}

// Has reports whether key is present with a non-nil value
func (d Document) Has(key string) bool {
	v, ok := d.Get(key)
	return ok && v != nil
}

// String returns the value under key when it is a string
func (d Document) String(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case Document:
		return typed.Clone()
	case map[string]any:
		return Document(typed).Clone()
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Parse decodes a JSON object into a Document
func Parse(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, nil
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshaling document: %w", err)
	}
	if d == nil {
		d = Document{}
	}
	return d, nil
}

// Bytes returns the JSON encoding of the document, "{}" when empty
func (d Document) Bytes() ([]byte, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]any(d))
}

// Value implements driver.Valuer so documents can be stored in JSONB columns
func (d Document) Value() (driver.Value, error) {
	b, err := d.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB columns
func (d *Document) Scan(src any) error {
	var data []byte
	switch typed := src.(type) {
	case nil:
		*d = Document{}
		return nil
	case []byte:
		data = typed
	case string:
		data = []byte(typed)
	default:
		return fmt.Errorf("scanning document: unsupported type %T", src)
	}
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Equal compares two scalar values by their canonical string form.
// JSON decoding turns integers into float64, so 3 and 3.0 compare equal.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if _, ok := b.(string); ok {
		return false
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
