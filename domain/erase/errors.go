package erase

import (
	"errors"
	"fmt"
)

// Stage names a step of the erase run.
type Stage string

const (
	StageLoad    Stage = "load"
	StageSelect  Stage = "select"
	StageMask    Stage = "mask"
	StageInpaint Stage = "inpaint"
	StageWrite   Stage = "write"
)

// ErrSizeMismatch is returned when the inpainted image differs in size from its input.
var ErrSizeMismatch = errors.New("result size differs from input")

// StageError annotates an error with the stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *StageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Wrap attaches stage to err. A nil err stays nil.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the stage recorded in err, if any.
func StageOf(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return "", false
}
