package props

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Collection is a flexible key-value store for typed properties.
// Suitable for configuration fragments, metadata, or any scenario
// that needs dynamic but type-checked property handling.
type Collection struct {
	props map[string]Value
}

// NewCollection creates an empty property collection.
func NewCollection() *Collection {
	return &Collection{
		props: make(map[string]Value),
	}
}

// Set stores a property value under key, replacing any previous value.
func (c *Collection) Set(key string, value Value) {
	c.props[key] = value
}

// Get returns the value stored under key.
// It reports false if the key is absent.
func (c *Collection) Get(key string) (Value, bool) {
	value, ok := c.props[key]
	return value, ok
}

// Has reports whether a value is stored under key.
func (c *Collection) Has(key string) bool {
	_, ok := c.props[key]
	return ok
}

// Delete removes the value stored under key and reports whether one
// was present.
func (c *Collection) Delete(key string) bool {
	_, ok := c.props[key]
	delete(c.props, key)
	return ok
}

// Len returns the number of stored properties.
func (c *Collection) Len() int {
	return len(c.props)
}

// Keys returns the stored keys in lexical order.
func (c *Collection) Keys() []string {
	keys := make([]string, 0, len(c.props))
	for k := range c.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalYAML encodes the collection as a plain mapping. Timestamps
// are written as RFC 3339 strings so documents stay portable.
func (c *Collection) MarshalYAML() (interface{}, error) {
	out := make(map[string]interface{}, len(c.props))
	for key, value := range c.props {
		switch value.kind {
		case KindString:
			out[key] = value.str
		case KindInt:
			out[key] = value.num
		case KindFloat:
			out[key] = value.flt
		case KindBool:
			out[key] = value.bit
		case KindTime:
			out[key] = value.ts.Format(time.RFC3339)
		}
	}
	return out, nil
}

// UnmarshalYAML decodes a plain mapping, inferring each property's
// kind from its YAML scalar type. Strings that parse as RFC 3339
// timestamps become time values.
func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.props = make(map[string]Value, len(raw))
	for key, entry := range raw {
		value, err := fromYAMLScalar(entry)
		if err != nil {
			return fmt.Errorf("props: key %q: %w", key, err)
		}
		c.props[key] = value
	}
	return nil
}

func fromYAMLScalar(entry interface{}) (Value, error) {
	switch v := entry.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return Time(ts), nil
		}
		return String(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		return Float(v), nil
	case bool:
		return Bool(v), nil
	case time.Time:
		return Time(v), nil
	default:
		return Value{}, fmt.Errorf("unsupported scalar type %T", entry)
	}
}
