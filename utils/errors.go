package utils

import errors "github.com/go-errors/errors"

var (
	NotImplementedError = errors.New("Not implemented")
	NotFoundError       = errors.New("Not found")
)
