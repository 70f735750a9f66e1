package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrEmptyTag indicates a search was submitted with a zero-length tag
	ErrEmptyTag = errors.New("search tag is empty")

	// ErrServerOffline indicates the search API is unreachable
	ErrServerOffline = errors.New("search API is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("API key is invalid")

	// ErrMalformedHistory indicates the persisted tag history could not be decoded
	ErrMalformedHistory = errors.New("persisted tag history is malformed")
)
