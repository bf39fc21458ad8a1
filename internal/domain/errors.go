package domain

import "errors"

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrMalformedDays     = errors.New("malformed day string")
	ErrMalformedInterval = errors.New("malformed time interval")
)
