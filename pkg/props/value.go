package props

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the type of data a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged union of the property types supported by a
// Collection. Construct values with String, Int, Float, Bool or Time;
// the zero Value is an empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bit  bool
	ts   time.Time
}

// String creates a string-valued property.
func String(v string) Value { return Value{kind: KindString, str: v} }

// Int creates an integer-valued property.
func Int(v int64) Value { return Value{kind: KindInt, num: v} }

// Float creates a float-valued property.
func Float(v float64) Value { return Value{kind: KindFloat, flt: v} }

// Bool creates a boolean-valued property.
func Bool(v bool) Value { return Value{kind: KindBool, bit: v} }

// Time creates a timestamp-valued property.
func Time(v time.Time) Value { return Value{kind: KindTime, ts: v} }

// Kind returns the kind of data the value holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload; false if the value is not a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the integer payload; false if the value is not an int.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsFloat returns the float payload; false if the value is not a float.
func (v Value) AsFloat() (float64, bool) { return v.flt, v.kind == KindFloat }

// AsBool returns the boolean payload; false if the value is not a bool.
func (v Value) AsBool() (bool, bool) { return v.bit, v.kind == KindBool }

// AsTime returns the timestamp payload; false if the value is not a time.
func (v Value) AsTime() (time.Time, bool) { return v.ts, v.kind == KindTime }

// String returns the display form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bit)
	case KindTime:
		return v.ts.Format(time.RFC3339)
	default:
		return ""
	}
}
