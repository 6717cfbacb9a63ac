package errors

import "errors"

var (
	ErrTitleRoRequired    = errors.New("romanian title is required")
	ErrTitleEnRequired    = errors.New("english title is required")
	ErrInvalidCategory    = errors.New("unknown project category")
	ErrInvalidCurrency    = errors.New("unknown currency")
	ErrInvalidPrice       = errors.New("price is not a number")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrInvalidOrderIndex  = errors.New("order index is not an integer")
	ErrInvalidPlacement   = errors.New("unknown photo placement")
	ErrProjectRequired    = errors.New("project selection required for project placement")
	ErrFileRequired       = errors.New("no file provided")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrProjectNotFound    = errors.New("project not found")
	ErrPhotoNotFound      = errors.New("photo not found")
)
