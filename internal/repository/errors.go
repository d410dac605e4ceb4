// Package repository defines the MySQL-backed stores used by the worker and
// the error values they share.
package repository

import "errors"

// ErrDuplicate is returned when an inquiry with the same id was already
// stored. The consumer treats it as success so redeliveries are harmless.
var ErrDuplicate = errors.New("duplicate")

// ErrInvalid is returned for rows that would violate table constraints.
var ErrInvalid = errors.New("invalid")
