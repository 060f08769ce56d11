package errors

import "errors"

var (
	ErrNilTable             = errors.New("trip table is nil")
	ErrResponseNotGenerated = errors.New("response was not generated")
)
