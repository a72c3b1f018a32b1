package zebra

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned by Load when no line in the data file carries
// tracking data.
var ErrEmptyDataset = errors.New("zebra: no matches with tracking data")

// ErrIndexOutOfRange is returned by At for positions outside [0, Len()).
var ErrIndexOutOfRange = errors.New("zebra: match position out of range")

// FormatError reports a data file line that is not valid JSON.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("zebra: line %d: invalid JSON: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// RecordError reports a raw match record that violates the tracking data
// contract (missing zebra block, wrong alliance size, incomplete team entry).
type RecordError struct {
	Match  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("zebra: malformed record %q: %s", e.Match, e.Reason)
}

// KeyError reports a lookup for a match key that is not in the index.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("zebra: match key %q not found", e.Key)
}
