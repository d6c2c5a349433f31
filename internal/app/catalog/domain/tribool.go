package domain

import "strings"

// TriBool is a boolean filter that can also be left unset.
type TriBool int8

const (
	// Unset means the filter does not constrain the field.
	Unset TriBool = iota
	// True constrains the field to true.
	True
	// False constrains the field to false.
	False
)

// ParseTriBool reads a free-form flag. It never fails: input that is not a
// recognised truthy or falsy word is treated as not specified.
func ParseTriBool(raw string) TriBool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return True
	case "0", "false", "no", "off":
		return False
	default:
		return Unset
	}
}

// TriBoolOf converts a plain bool.
func TriBoolOf(v bool) TriBool {
	if v {
		return True
	}
	return False
}

// IsSet reports whether the flag constrains anything.
func (t TriBool) IsSet() bool {
	return t == True || t == False
}

// Bool returns the flag value. It is only meaningful when IsSet is true.
func (t TriBool) Bool() bool {
	return t == True
}

// String returns the canonical token: "true", "false" or "null".
func (t TriBool) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "null"
	}
}
