package session

import "errors"

var (
	ErrNotFound       = errors.New("session not found")
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrUnknownField   = errors.New("unknown field")
	ErrInvalidValue   = errors.New("invalid field value")
	ErrEmptyRecord    = errors.New("no form fields filled yet")
)
