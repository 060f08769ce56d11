package loader

import "errors"

var (
	ErrDatasetNotFound   = errors.New("dataset not found")
	ErrDatasetUnreadable = errors.New("dataset could not be read")
	ErrMissingColumn     = errors.New("missing column")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidDuration   = errors.New("invalid duration type")

	errEmptyDataset = errors.New("the dataset has no header")
)
