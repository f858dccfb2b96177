package validator

import (
	"strings"
)

// FieldError is a single violated rule.
type FieldError struct {
	// Loc is the json name of the offending field, empty for errors about the whole payload.
	Loc  string
	Msg  string
	Type string
}

// Errors collects every violation found in one payload.
type Errors []FieldError

func (e Errors) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed: ")
	for i, fe := range e {
		if i > 0 {
			sb.WriteString("; ")
		}
		if fe.Loc != "" {
			sb.WriteString(fe.Loc)
			sb.WriteString(": ")
		}
		sb.WriteString(fe.Msg)
	}
	return sb.String()
}

// Has reports whether a violation for loc is already recorded.
func (e Errors) Has(loc string) bool {
	for _, fe := range e {
		if fe.Loc == loc {
			return true
		}
	}
	return false
}
