package check

import "bytes"

// SingleEndOfLine checks that raw ends with exactly one newline.
func SingleEndOfLine(raw []byte) error {
	if !bytes.HasSuffix(raw, []byte("\n")) {
		return &Violation{Code: CodeMissingNewline, Message: "File does not end with a new line"}
	}
	if bytes.HasSuffix(raw, []byte("\n\n")) || bytes.HasSuffix(raw, []byte("\r\n\r\n")) {
		return &Violation{Code: CodeMultipleNewlines, Message: "File ends with multiple new lines"}
	}
	return nil
}
