package kata

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeParseError marks malformed serialized text: the underlying parse
	// primitive rejected the input before any schema ran.
	CodeParseError = "parse_error"
	// CodeInvalidStructure marks input that parsed cleanly but was rejected
	// by the schema's validator.
	CodeInvalidStructure = "invalid_structure"
	// CodeEncodeError marks a representation the wire codec could not
	// serialize.
	CodeEncodeError = "encode_error"
)

// Issue represents a single boundary error entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Issues is a collection of boundary errors that implements error.
//
// Structural invalidity inside the combinator core is reported through
// Validate returning false, never through Issues; Issues exists for the one
// boundary where input is untrusted text.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. parse_error at /
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the first underlying cause for errors.Is/As chains.
func (iss Issues) Unwrap() error {
	for _, it := range iss {
		if it.Cause != nil {
			return it.Cause
		}
	}
	return nil
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
