package rimsjson

import (
	"bytes"
	"encoding/json"
)

// object is a JSON object that marshals its keys in append order.
// encoding/json sorts map keys, and the scheme object mixes fixed keys with
// positional step_level{i} keys, so struct tags cannot express the canonical
// layout either.
type object struct {
	keys []string
	vals []any
}

func (o *object) set(key string, v any) {
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
