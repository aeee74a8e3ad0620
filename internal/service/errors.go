package service

import "errors"

var (
	ErrUnknownAction = errors.New("unknown install action")
	ErrNoSession     = errors.New("no install session given")
)
