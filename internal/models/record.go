package models

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrRecordNotMapping is returned when a record is decoded from a non-mapping node.
var ErrRecordNotMapping = errors.New("record must be a mapping")

// Field is a single key/value pair of a record.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RawRecord is an ordered mapping of raw field names to values, as scraped.
type RawRecord struct {
	keys   []string
	values map[string]string
}

// NewRawRecord creates an empty record.
func NewRawRecord() *RawRecord {
	return &RawRecord{values: make(map[string]string)}
}

// RawRecordFromMap builds a record from a map. Keys are sorted so the
// result does not depend on map iteration order.
func RawRecordFromMap(m map[string]string) *RawRecord {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := NewRawRecord()
	for _, k := range keys {
		r.Set(k, m[k])
	}

	return r
}

// Set stores value under key. Re-setting a key keeps its original position.
func (r *RawRecord) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Get returns the value stored under key.
func (r *RawRecord) Get(key string) (string, bool) {
	v, ok := r.values[key]

	return v, ok
}

// Len returns the number of fields.
func (r *RawRecord) Len() int {
	return len(r.keys)
}

// Fields returns the fields in insertion order.
func (r *RawRecord) Fields() []Field {
	fields := make([]Field, 0, len(r.keys))
	for _, k := range r.keys {
		fields = append(fields, Field{Key: k, Value: r.values[k]})
	}

	return fields
}

// Map returns a plain copy of the record.
func (r *RawRecord) Map() map[string]string {
	m := make(map[string]string, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.values[k]
	}

	return m
}

// UnmarshalYAML decodes a mapping node, keeping the document's key order.
// Scalar values of any YAML type are kept as their literal text.
func (r *RawRecord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d", ErrRecordNotMapping, node.Line)
	}

	*r = RawRecord{values: make(map[string]string, len(node.Content)/2)}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("field %q: value must be a scalar (line %d)", key.Value, val.Line)
		}

		// ~ and empty values both arrive as an empty string
		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}

		r.Set(key.Value, value)
	}

	return nil
}

// ParseRecords decodes a YAML (or JSON) list of mappings into records.
func ParseRecords(data []byte) ([]*RawRecord, error) {
	var records []*RawRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}

	return slices.DeleteFunc(records, func(r *RawRecord) bool { return r == nil }), nil
}
