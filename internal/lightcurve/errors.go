package lightcurve

import "fmt"

// #region parse-error
// ParseError reports a malformed input file with enough context to locate
// the offending row. Row is 1-based and counts the header.
type ParseError struct {
	File string
	Row  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %s", e.File, e.Row, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}
// #endregion parse-error
