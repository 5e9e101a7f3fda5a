package slot

import "errors"

var (
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrInvalidDate    = errors.New("invalid date, expected yyyy-MM-dd")
	ErrUnknownTime    = errors.New("time is not an offerable slot")
	ErrInvalidCatalog = errors.New("invalid slot catalog")
)
