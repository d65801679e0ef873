package card

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Number is an optional float that remembers whether the source value was
// numeric. Non-numeric values decode without error and leave it unset, so
// the validator can tell "missing or wrong type" apart from "out of range".
type Number struct {
	Value float64
	Set   bool
}

// NumberOf returns a set Number.
func NumberOf(v float64) Number {
	return Number{Value: v, Set: true}
}

// Or returns the value, or def when the number is unset or not finite.
func (n Number) Or(def float64) float64 {
	if !n.Finite() {
		return def
	}
	return n.Value
}

// UnmarshalJSON accepts any JSON value. Only numbers set the Number.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"', '{', '[', 't', 'f', 'n':
		var discard interface{}
		return json.Unmarshal(data, &discard)
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = NumberOf(v)
	return nil
}

// Finite reports whether the number is set to a finite value.
func (n Number) Finite() bool {
	return n.Set && !math.IsNaN(n.Value) && !math.IsInf(n.Value, 0)
}

// MarshalJSON writes null for an unset or non-finite Number.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Finite() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'g', -1, 64)), nil
}

// UnmarshalYAML accepts any node. Only finite !!int and !!float scalars set
// the Number; .nan and .inf are treated as non-numeric.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	*n = Number{}
	if node.Kind != yaml.ScalarNode {
		return nil
	}
	switch node.Tag {
	case "!!int", "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		*n = NumberOf(v)
	}
	return nil
}

// MarshalYAML writes null for an unset or non-finite Number.
func (n Number) MarshalYAML() (interface{}, error) {
	if !n.Finite() {
		return nil, nil
	}
	return n.Value, nil
}
