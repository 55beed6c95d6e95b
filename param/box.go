// File: box.go
// Role: Box - the ordered, named collection of Values owned by one
// Parametrized component (a runner, kicker, or solver).
package param

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Box is the parameter collection of a single Parametrized component.
// Prefix namespaces every flag as "<prefix>::<flag>".
type Box struct {
	Prefix string
	values []Value
	byFlag map[string]Value
}

// NewBox constructs an empty Box for the given prefix.
func NewBox(prefix string) *Box {
	return &Box{Prefix: prefix, byFlag: make(map[string]Value)}
}

// Register adds v to the Box. Panics on duplicate flag names within the
// same Box: that is a programming error in the owning component, not a
// runtime condition callers can recover from.
func (b *Box) Register(v Value) {
	if _, exists := b.byFlag[v.Flag()]; exists {
		panic(fmt.Sprintf("param: duplicate flag %q in box %q", v.Flag(), b.Prefix))
	}
	b.values = append(b.values, v)
	b.byFlag[v.Flag()] = v
}

// Values returns the registered parameters in registration order.
func (b *Box) Values() []Value { return b.values }

// Get returns the named parameter, or ErrParameterNotValid if it was never
// registered.
func (b *Box) Get(flag string) (Value, error) {
	v, ok := b.byFlag[flag]
	if !ok {
		return nil, ErrParameterNotValid
	}
	return v, nil
}

// RequireSet returns ErrParameterNotSet if flag is registered but has no
// assigned value, ErrParameterNotValid if it was never registered, and nil
// otherwise. Runners call this from InitializeRun for every parameter they
// need before running a single iteration.
func (b *Box) RequireSet(flag string) error {
	v, err := b.Get(flag)
	if err != nil {
		return err
	}
	if !v.IsSet() {
		return ErrParameterNotSet
	}
	return nil
}

// CopyValuesFrom overwrites b's values with other's, matched by flag name.
// Used by Runner.Clone so a template runner's tuned parameters propagate to
// every instance a solver spawns from it.
func (b *Box) CopyValuesFrom(other *Box) {
	var v Value
	for _, v = range other.values {
		dst, ok := b.byFlag[v.Flag()]
		if !ok {
			continue
		}
		_ = dst.FromJSON(v.ToJSON())
	}
}

// ToJSON renders the Box as a {flag: value} map, suitable for nesting under
// {prefix: ...} in a larger configuration document.
func (b *Box) ToJSON() map[string]interface{} {
	out := make(map[string]interface{}, len(b.values))
	var v Value
	for _, v = range b.values {
		out[v.Flag()] = v.ToJSON()
	}
	return out
}

// FromJSON assigns values from a {flag: value} map. Unknown flags are
// reported as ErrUnknownFlag; the Box is updated for every recognized flag
// before the error is returned so partial documents still take effect.
func (b *Box) FromJSON(doc map[string]interface{}) error {
	var err error
	var flag string
	var raw interface{}
	for flag, raw = range doc {
		v, ok := b.byFlag[flag]
		if !ok {
			err = ErrUnknownFlag
			continue
		}
		if e := v.FromJSON(raw); e != nil {
			err = e
		}
	}
	return err
}

// ApplyFlag routes a single CLI-style "<flag>[=value]" token (prefix
// already stripped) into the Box, honoring the flag-enable/flag-disable
// sugar for boolean parameters.
func (b *Box) ApplyFlag(flag, value string) error {
	if strings.HasSuffix(flag, "-enable") {
		base := strings.TrimSuffix(flag, "-enable")
		if v, ok := b.byFlag[base]; ok && v.IsBool() {
			return v.FromString("true")
		}
	}
	if strings.HasSuffix(flag, "-disable") {
		base := strings.TrimSuffix(flag, "-disable")
		if v, ok := b.byFlag[base]; ok && v.IsBool() {
			return v.FromString("false")
		}
	}
	v, ok := b.byFlag[flag]
	if !ok {
		return ErrUnknownFlag
	}
	return v.FromString(value)
}

// ReadFromStream prompts os for every unset parameter in registration
// order, reading one line per parameter from is. Lines that are empty
// (just Enter) keep the parameter's current default and leave IsSet
// unchanged.
func (b *Box) ReadFromStream(is io.Reader, os io.Writer) error {
	scanner := bufio.NewScanner(is)
	var v Value
	for _, v = range b.values {
		if v.IsSet() {
			continue
		}
		_, _ = fmt.Fprintf(os, "%s::%s (%s): ", b.Prefix, v.Flag(), v.Description())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := v.FromString(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
