// File: value.go
// Role: the Value interface and its concrete kinds.
//
// Design:
//   - Values are monomorphized (IntParam/FloatParam/BoolParam/StringParam/
//     DurationParam) rather than a single generic Value[T], because a Box
//     holds a heterogeneous slice of parameters and routes them by flag at
//     runtime (CLI/JSON); a type parameter cannot express that
//     heterogeneity in one slice.
package param

import (
	"strconv"
	"time"
)

// Value is the common contract every concrete parameter kind satisfies.
type Value interface {
	// Flag is the bare flag name within its owning Box (no prefix).
	Flag() string
	// Description is a one-line human-readable explanation, used by
	// ReadFromStream prompts and --help-style output.
	Description() string
	// IsSet reports whether a value has been assigned through FromString
	// (CLI) or FromJSON; the constructor's default does not count.
	IsSet() bool
	// ToJSON returns the value in a JSON-marshalable form.
	ToJSON() interface{}
	// FromJSON assigns the value from a decoded JSON value.
	FromJSON(v interface{}) error
	// FromString assigns the value by parsing a command-line token.
	FromString(s string) error
	// IsBool reports whether this parameter is a boolean (enables the
	// flag-enable/flag-disable CLI sugar).
	IsBool() bool
}

type base struct {
	flag string
	desc string
	set  bool
}

func (b *base) Flag() string        { return b.flag }
func (b *base) Description() string { return b.desc }
func (b *base) IsSet() bool         { return b.set }
func (b *base) IsBool() bool        { return false }

// IntParam is an integer-valued parameter.
type IntParam struct {
	base
	Value int64
}

// NewInt registers a new integer parameter with the given default.
func NewInt(flag, desc string, def int64) *IntParam {
	return &IntParam{base: base{flag: flag, desc: desc}, Value: def}
}

func (p *IntParam) ToJSON() interface{} { return p.Value }
func (p *IntParam) FromJSON(v interface{}) error {
	switch n := v.(type) {
	case float64:
		p.Value = int64(n)
	case int:
		p.Value = int64(n)
	case int64:
		p.Value = n
	default:
		return ErrIncorrectParameterValue
	}
	p.set = true
	return nil
}
func (p *IntParam) FromString(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ErrIncorrectParameterValue
	}
	p.Value = n
	p.set = true
	return nil
}

// FloatParam is a float64-valued parameter.
type FloatParam struct {
	base
	Value float64
}

// NewFloat registers a new float parameter with the given default.
func NewFloat(flag, desc string, def float64) *FloatParam {
	return &FloatParam{base: base{flag: flag, desc: desc}, Value: def}
}

func (p *FloatParam) ToJSON() interface{} { return p.Value }
func (p *FloatParam) FromJSON(v interface{}) error {
	f, ok := v.(float64)
	if !ok {
		return ErrIncorrectParameterValue
	}
	p.Value = f
	p.set = true
	return nil
}
func (p *FloatParam) FromString(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ErrIncorrectParameterValue
	}
	p.Value = f
	p.set = true
	return nil
}

// BoolParam is a boolean-valued parameter, additionally routable via the
// flag-enable/flag-disable CLI switches.
type BoolParam struct {
	base
	Value bool
}

// NewBool registers a new boolean parameter with the given default.
func NewBool(flag, desc string, def bool) *BoolParam {
	return &BoolParam{base: base{flag: flag, desc: desc}, Value: def}
}

func (p *BoolParam) IsBool() bool        { return true }
func (p *BoolParam) ToJSON() interface{} { return p.Value }
func (p *BoolParam) FromJSON(v interface{}) error {
	b, ok := v.(bool)
	if !ok {
		return ErrIncorrectParameterValue
	}
	p.Value = b
	p.set = true
	return nil
}
func (p *BoolParam) FromString(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return ErrIncorrectParameterValue
	}
	p.Value = b
	p.set = true
	return nil
}

// StringParam is a string-valued parameter.
type StringParam struct {
	base
	Value string
}

// NewString registers a new string parameter with the given default.
func NewString(flag, desc string, def string) *StringParam {
	return &StringParam{base: base{flag: flag, desc: desc}, Value: def}
}

func (p *StringParam) ToJSON() interface{} { return p.Value }
func (p *StringParam) FromJSON(v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return ErrIncorrectParameterValue
	}
	p.Value = s
	p.set = true
	return nil
}
func (p *StringParam) FromString(s string) error {
	p.Value = s
	p.set = true
	return nil
}

// DurationParam is a time.Duration-valued parameter (e.g. a solver timeout).
type DurationParam struct {
	base
	Value time.Duration
}

// NewDuration registers a new duration parameter with the given default.
func NewDuration(flag, desc string, def time.Duration) *DurationParam {
	return &DurationParam{base: base{flag: flag, desc: desc}, Value: def}
}

func (p *DurationParam) ToJSON() interface{} { return p.Value.String() }
func (p *DurationParam) FromJSON(v interface{}) error {
	switch d := v.(type) {
	case string:
		dur, err := time.ParseDuration(d)
		if err != nil {
			return ErrIncorrectParameterValue
		}
		p.Value = dur
	case float64:
		p.Value = time.Duration(d)
	default:
		return ErrIncorrectParameterValue
	}
	p.set = true
	return nil
}
func (p *DurationParam) FromString(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return ErrIncorrectParameterValue
	}
	p.Value = d
	p.set = true
	return nil
}
