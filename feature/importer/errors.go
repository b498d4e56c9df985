package importer

import "fmt"

// UnsupportedFormatError reports a document that carries no table-like
// structure to extract a roster from.
type UnsupportedFormatError struct {
	Filename string
	Reason   string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported roster document %q: %s", e.Filename, e.Reason)
}

// DateRangeError reports a grid in which no date anchor was found, or
// whose dates do not cover the requested month.
type DateRangeError struct {
	Reason string
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("no usable dates in roster document: %s", e.Reason)
}
