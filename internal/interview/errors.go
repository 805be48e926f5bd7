package interview

import "fmt"

// OutOfRangeError reports a QA index outside the record's list.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("question index %d out of range (have %d)", e.Index, e.Length)
}
