package models

import "fmt"

// ScaleName identifies one of the predefined estimation scales
type ScaleName string

const (
	// ScaleFibonacci is the classic Fibonacci point scale
	ScaleFibonacci ScaleName = "fibonacci"

	// ScaleTShirt is the T-shirt size scale
	ScaleTShirt ScaleName = "tshirt"

	// ScalePowerOfTwo is the doubling point scale
	ScalePowerOfTwo ScaleName = "power_of_two"
)

// Scale is an immutable named ordered set of estimation labels.
// Votes in a session are validated against the session's scale.
type Scale struct {
	// Name identifies the scale, either a predefined name or a custom one
	Name string `json:"name"`

	// Values are the ordered estimation labels voters choose from
	Values []string `json:"values"`
}

// FibonacciScale returns the predefined Fibonacci scale
func FibonacciScale() Scale {
	return Scale{
		Name:   string(ScaleFibonacci),
		Values: []string{"1", "2", "3", "5", "8", "13", "21", "34"},
	}
}

// TShirtScale returns the predefined T-shirt size scale
func TShirtScale() Scale {
	return Scale{
		Name:   string(ScaleTShirt),
		Values: []string{"XS", "S", "M", "L", "XL", "XXL"},
	}
}

// PowerOfTwoScale returns the predefined power-of-two scale
func PowerOfTwoScale() Scale {
	return Scale{
		Name:   string(ScalePowerOfTwo),
		Values: []string{"1", "2", "4", "8", "16", "32"},
	}
}

// NewCustomScale creates a user-named scale. A scale needs at least two
// unique, non-empty values.
func NewCustomScale(name string, values []string) (Scale, error) {
	if name == "" {
		return Scale{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidScale)
	}

	if len(values) < 2 {
		return Scale{}, fmt.Errorf("%w: need at least 2 values, got %d", ErrInvalidScale, len(values))
	}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			return Scale{}, fmt.Errorf("%w: values cannot be empty", ErrInvalidScale)
		}
		if seen[v] {
			return Scale{}, fmt.Errorf("%w: duplicate value %q", ErrInvalidScale, v)
		}
		seen[v] = true
	}

	copied := make([]string, len(values))
	copy(copied, values)

	return Scale{
		Name:   name,
		Values: copied,
	}, nil
}

// PredefinedScale resolves a predefined scale by name
func PredefinedScale(name string) (Scale, error) {
	switch ScaleName(name) {
	case ScaleFibonacci:
		return FibonacciScale(), nil
	case ScaleTShirt:
		return TShirtScale(), nil
	case ScalePowerOfTwo:
		return PowerOfTwoScale(), nil
	default:
		return Scale{}, fmt.Errorf("%w: unknown scale %q", ErrInvalidScale, name)
	}
}

// IsValid reports whether value is a member of the scale. Sentinel vote
// values are not scale members.
func (s Scale) IsValid(value string) bool {
	return s.indexOf(value) >= 0
}

// Equals compares scales structurally by name and ordered values
func (s Scale) Equals(other Scale) bool {
	if s.Name != other.Name || len(s.Values) != len(other.Values) {
		return false
	}
	for i, v := range s.Values {
		if other.Values[i] != v {
			return false
		}
	}
	return true
}

func (s Scale) indexOf(value string) int {
	for i, v := range s.Values {
		if v == value {
			return i
		}
	}
	return -1
}
