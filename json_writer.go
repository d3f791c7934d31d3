package equity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter writes a JSON object whose fields keep their insertion
// order, so ledgers read year, price, tracks and total in that order.
// The zero value is an empty object.
type jsonObjectWriter struct {
	fields bytes.Buffer
	err    error
}

// Append marshals value and adds it under key. The first error is kept and
// every later call is a no-op.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	data, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	k, _ := json.Marshal(key)
	if w.fields.Len() > 0 {
		w.fields.WriteByte(',')
	}
	w.fields.Write(k)
	w.fields.WriteByte(':')
	w.fields.Write(data)
	return w
}

// Optional appends value unless it is the zero value of its type or an empty
// slice.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	v := reflect.ValueOf(value)
	switch {
	case !v.IsValid(), v.IsZero():
		return w
	case v.Kind() == reflect.Slice && v.Len() == 0:
		return w
	}
	return w.Append(key, value)
}

func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.fields.Len()+2)
	out = append(out, '{')
	out = append(out, w.fields.Bytes()...)
	return append(out, '}'), nil
}
