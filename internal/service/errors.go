package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidRenderPath = errors.New("invalid render path: expected /<bucket>/<folder>/.../<image>")
	ErrBucketNotBound    = errors.New("bucket binding not found")

	ErrConfigNotFound = errors.New("config not found")
	ErrImageNotFound  = errors.New("image not found")

	ErrInvalidLayoutConfig = errors.New("invalid layout config")
)
