package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// DefaultListLimit applies when a listing request has no limit
	DefaultListLimit = 50
	// MaxListLimit caps the limit query parameter
	MaxListLimit = 200
)
