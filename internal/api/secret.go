package api

import "encoding/json"

// Secret models a write-only configuration field such as the crawler cookie
// or the LLM API key. The backend never echoes the stored value; reads carry
// only a presence flag, and an update that omits the field keeps the stored
// value. The three states are kept structurally distinct so "leave unchanged"
// is never inferred from string emptiness:
//
//   - unset: the operator typed nothing; the field is omitted from requests
//   - redacted: a read reported whether a value is stored, value unknown
//   - new: the operator typed a replacement value
type Secret struct {
	state   secretState
	value   string
	present bool
}

type secretState int

const (
	secretUnset secretState = iota
	secretRedacted
	secretNew
)

// NewSecret returns a Secret carrying a replacement value to send.
func NewSecret(value string) Secret {
	return Secret{state: secretNew, value: value}
}

// RedactedSecret returns a Secret that records only whether the backend has
// a value stored.
func RedactedSecret(present bool) Secret {
	return Secret{state: secretRedacted, present: present}
}

// IsZero reports whether the field should be omitted from a request body.
// Only a new value is ever serialized.
func (s Secret) IsZero() bool {
	return s.state != secretNew
}

// Present reports whether the backend holds a value, for redacted secrets.
// A new secret is present by definition.
func (s Secret) Present() bool {
	switch s.state {
	case secretNew:
		return s.value != ""
	case secretRedacted:
		return s.present
	default:
		return false
	}
}

// MarshalJSON serializes the replacement value. It is only reached for new
// secrets; unset and redacted secrets are dropped by omitzero.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
