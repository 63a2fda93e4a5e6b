package exporter

import (
	"bytes"

	"github.com/goccy/go-json"
)

// object is an insertion-ordered JSON object. Exporters build token
// trees out of these instead of maps so serialization never depends on
// map iteration order.
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: map[string]any{}}
}

// Set stores a value under key. Re-setting an existing key keeps its
// original position.
func (o *object) Set(key string, value any) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of keys.
func (o *object) Len() int {
	return len(o.keys)
}

// SetPath inserts value at a path of nested keys, creating
// intermediate objects as needed. When a path segment is already
// occupied by a leaf, the first writer wins and the new value is
// dropped, which keeps the output well-formed and deterministic.
func (o *object) SetPath(path []string, value any) {
	current := o
	for i, segment := range path {
		if i == len(path)-1 {
			if _, exists := current.values[segment]; !exists {
				current.Set(segment, value)
			}
			return
		}
		next, ok := current.values[segment]
		if !ok {
			child := newObject()
			current.Set(segment, child)
			current = child
			continue
		}
		child, ok := next.(*object)
		if !ok {
			return
		}
		current = child
	}
}

// MarshalJSON emits keys in insertion order. Values are encoded with
// goccy/go-json, which sorts plain map keys alphabetically, so the
// whole document is deterministic.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalDocument renders a value as an indented JSON document with a
// trailing newline.
func marshalDocument(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
