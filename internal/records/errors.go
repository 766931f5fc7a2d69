package records

import (
	"fmt"
	"strings"
)

// InvalidFileTypeError is returned when an upload is not a CSV file.
type InvalidFileTypeError struct {
	FileName string
	Reason   string
}

func (e *InvalidFileTypeError) Error() string {
	return fmt.Sprintf("invalid file type %q: %s", e.FileName, e.Reason)
}

// ParseError wraps a failure of the CSV reader itself.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed csv at line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed csv: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnsError lists required header names absent from the file.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// EmptyOrMalformedError means no usable row survived row-level validation.
type EmptyOrMalformedError struct {
	RowsRead int
}

func (e *EmptyOrMalformedError) Error() string {
	if e.RowsRead == 0 {
		return "csv has no data rows"
	}
	return fmt.Sprintf("none of the %d csv rows carried date, time and translated_text", e.RowsRead)
}
