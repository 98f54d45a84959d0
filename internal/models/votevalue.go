package models

import "fmt"

// Sentinel vote values, exempt from scale membership and ordering
const (
	// VoteAbstain indicates the participant does not want to estimate
	VoteAbstain = "abstain"

	// VoteBreak indicates the participant asks for a break
	VoteBreak = "break"

	// VoteUnsure indicates the participant cannot estimate yet
	VoteUnsure = "unsure"
)

// VoteValue is a single participant's estimation entry, bound to the
// scale it was validated against.
type VoteValue struct {
	// Raw is the vote label as submitted
	Raw string `json:"raw"`

	// Scale is the scale the value was validated against
	Scale Scale `json:"scale"`
}

// NewVoteValue validates raw against scale and returns the vote value.
// Raw must be a sentinel or a scale member.
func NewVoteValue(raw string, scale Scale) (VoteValue, error) {
	if raw == "" {
		return VoteValue{}, fmt.Errorf("%w: value cannot be empty", ErrInvalidVoteValue)
	}

	if !isSentinel(raw) && !scale.IsValid(raw) {
		return VoteValue{}, fmt.Errorf("%w: %q is not part of scale %q", ErrInvalidVoteValue, raw, scale.Name)
	}

	return VoteValue{
		Raw:   raw,
		Scale: scale,
	}, nil
}

// IsSentinel reports whether the value is one of the special
// non-numeric votes (abstain, break, unsure)
func (v VoteValue) IsSentinel() bool {
	return isSentinel(v.Raw)
}

// IsAbstain reports whether the participant abstained
func (v VoteValue) IsAbstain() bool {
	return v.Raw == VoteAbstain
}

// IsBreak reports whether the participant asked for a break
func (v VoteValue) IsBreak() bool {
	return v.Raw == VoteBreak
}

// IsUnsure reports whether the participant is unsure
func (v VoteValue) IsUnsure() bool {
	return v.Raw == VoteUnsure
}

// Compare orders two regular values by their index position in the
// shared scale: -1 if v sorts before other, 0 if equal, 1 if after.
// Comparing across scales or against a sentinel is an error.
func (v VoteValue) Compare(other VoteValue) (int, error) {
	if !v.Scale.Equals(other.Scale) {
		return 0, fmt.Errorf("%w: different scales %q and %q", ErrIncomparableValue, v.Scale.Name, other.Scale.Name)
	}

	if v.IsSentinel() || other.IsSentinel() {
		return 0, fmt.Errorf("%w: sentinel values have no ordering", ErrIncomparableValue)
	}

	i, j := v.Scale.indexOf(v.Raw), other.Scale.indexOf(other.Raw)
	switch {
	case i < j:
		return -1, nil
	case i > j:
		return 1, nil
	default:
		return 0, nil
	}
}

func isSentinel(raw string) bool {
	return raw == VoteAbstain || raw == VoteBreak || raw == VoteUnsure
}
