package services

import "errors"

var (
	// ErrNoToken means an authenticated action was attempted with no stored
	// credential. No network call is made in that case.
	ErrNoToken = errors.New("no token found")

	// ErrEmptyContent rejects blank blog content before submission.
	ErrEmptyContent = errors.New("blog content is empty")

	// ErrMissingFields rejects blank login/register credentials.
	ErrMissingFields = errors.New("all fields are required")
)
