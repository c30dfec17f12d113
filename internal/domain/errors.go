package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateITSNumber = errors.New("ITS number already exists")
	ErrInvalidHouseColor  = errors.New("invalid house color")
	ErrInvalidKalamType   = errors.New("invalid kalam type")
	ErrMissingUploadField = errors.New("missing fileName or contentType")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUploadFailed       = errors.New("upload failed")
	ErrServerConfig       = errors.New("server configuration error")
)
