package assetlist

import "fmt"

// RangeDirectionError reports a range entry whose start exceeds its end.
// The list parsed, so this is a validation failure, not a SyntaxError.
type RangeDirectionError struct {
	index int
	from  AssetID
	to    AssetID
}

// Error implements the error interface.
func (e *RangeDirectionError) Error() string {
	return fmt.Sprintf("entry %d: range start %s must not exceed range end %s", e.index+1, e.from, e.to)
}

// Index returns the zero-based position of the offending entry in the list.
func (e *RangeDirectionError) Index() int { return e.index }

// From returns the offending range's start identifier.
func (e *RangeDirectionError) From() AssetID { return e.from }

// To returns the offending range's end identifier.
func (e *RangeDirectionError) To() AssetID { return e.to }

// Validate confirms every range entry runs forwards (from <= to), scanning
// in list order and returning a RangeDirectionError for the first violation.
// Single entries always pass. Call this before expanding the list.
func (l List) Validate() error {
	for i, e := range l {
		if e.Kind() != KindRange {
			continue
		}
		if e.To().Less(e.From()) {
			return &RangeDirectionError{index: i, from: e.From(), to: e.To()}
		}
	}
	return nil
}
