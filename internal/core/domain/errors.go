package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNegativeMetric    = errors.New("negative metric value")
	ErrNoPerformanceData = errors.New("no performance data for the requested period")
)
