package display

import (
	"errors"

	errorvalues "github.com/limbo/fitstar/internal/error_values"
)

type Status int

const (
	StatusLoading Status = iota
	StatusEmpty
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusEmpty:
		return "empty"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// State tags fetched data so "nothing stored yet" and "backend failed" stay apart.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

func Loaded[T any](data T) State[T] {
	return State[T]{Status: StatusLoaded, Data: data}
}

// Resolve classifies a fetch result. Not-found errors mean Empty, any other error means Failed.
func Resolve[T any](data T, err error) State[T] {
	if err == nil {
		return Loaded(data)
	}
	if isNotFound(err) {
		return State[T]{Status: StatusEmpty, Err: err}
	}
	return State[T]{Status: StatusFailed, Err: err}
}

func (s State[T]) Ok() bool {
	return s.Status == StatusLoaded
}

func isNotFound(err error) bool {
	return errors.Is(err, errorvalues.ErrNotFound) ||
		errors.Is(err, errorvalues.ErrUserNotFound) ||
		errors.Is(err, errorvalues.ErrAnalysisNotFound)
}
