package service

import "errors"

var (
	ErrEmptyName = errors.New("name can't be empty")
	ErrEmptyAFM  = errors.New("AFM can't be empty")
)
