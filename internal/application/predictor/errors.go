package predictor

import (
	"errors"
	"fmt"
)

// ValidationError marks a caller-fixable failure: a missing required field or
// a value that could not be coerced to its declared type. Validation errors
// are resolved before any outbound query is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ErrEmptyResult is returned when the prediction query yields no rows.
var ErrEmptyResult = errors.New("no rows returned from ML.PREDICT")

// ColumnNotFoundError is returned when no column of the first result row
// holds a numeric prediction value.
type ColumnNotFoundError struct {
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("prediction column not found, available columns: %v", e.Columns)
}
