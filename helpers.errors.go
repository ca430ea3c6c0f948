package main

import "errors"

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateTitle  = errors.New("duplicate title is not allowed")
	ErrYearOutOfRange  = errors.New("year out of range")
	ErrInvalidYearMode = errors.New("year mode must be before or on-or-after")
)

type missingFieldError string

func (m missingFieldError) Error() string {
	return string(m) + " is required"
}
