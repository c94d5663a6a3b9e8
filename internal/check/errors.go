package check

// ViolationCode categorizes a failed check.
type ViolationCode string

const (
	// CodeUnsorted indicates entries out of lexical order.
	CodeUnsorted ViolationCode = "UNSORTED"

	// CodeWrongType indicates a section or element has an unexpected node type.
	CodeWrongType ViolationCode = "WRONG_TYPE"

	// CodeMissingKey indicates an array element lacks the sort key.
	CodeMissingKey ViolationCode = "MISSING_KEY"

	// CodeNonStringValue indicates the sort key holds a non-string value.
	CodeNonStringValue ViolationCode = "NON_STRING_VALUE"

	// CodeNotContiguous indicates a repeated array-of-tables header was interrupted.
	CodeNotContiguous ViolationCode = "NOT_CONTIGUOUS"

	// CodeMissingNewline indicates the file has no trailing newline.
	CodeMissingNewline ViolationCode = "MISSING_NEWLINE"

	// CodeMultipleNewlines indicates the file ends with more than one newline.
	CodeMultipleNewlines ViolationCode = "MULTIPLE_NEWLINES"
)

// Violation is a failed check.
//
// The code is for programmatic use; the rendered message is what users see.
type Violation struct {
	// Code identifies the failure category.
	Code ViolationCode

	// Section is the header the failure belongs to, e.g. "[dependencies]".
	// Empty for file-level checks.
	Section string

	// Message describes the failure, naming the offending entries.
	Message string

	// Line is the 1-based source line for raw-text checks, 0 otherwise.
	Line int
}

// Error implements the error interface.
func (v *Violation) Error() string {
	if v.Section != "" {
		return v.Section + " " + v.Message
	}
	return v.Message
}

// Is matches any *Violation with the same code, so callers can test
// errors.Is(err, &check.Violation{Code: check.CodeUnsorted}).
func (v *Violation) Is(target error) bool {
	t, ok := target.(*Violation)
	if !ok {
		return false
	}
	return t.Code == v.Code
}

// in sets the section prefix on a violation and returns it as an error.
func in(section string, err error) error {
	if v, ok := err.(*Violation); ok && v.Section == "" {
		v.Section = section
	}
	return err
}
