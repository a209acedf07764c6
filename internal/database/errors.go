package database

import (
	"errors"
	"fmt"
)

var (
	ErrNoYearColumn = errors.New("dataset has no Year column")
	ErrEmptyDataset = errors.New("dataset has no rows")
	ErrInvalidRow   = errors.New("invalid dataset row")
)

type OpError struct {
	Op       string
	Resource string
	Line     int
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s %s line %d: %v", e.Op, e.Resource, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapDatasetErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "dataset", Err: err}
}

func wrapRowErr(op string, line int, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "row", Line: line, Err: err}
}
