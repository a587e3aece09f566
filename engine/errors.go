package engine

import (
	"github.com/pkg/errors"
)

// ContractError is the panic value raised when calling code breaks an entity API precondition
// These indicate defects in the caller and are not meant to be recovered by game logic
type ContractError struct {
	Op  string
	err error
}

func (e *ContractError) Error() string {
	return "engine: " + e.Op + ": " + e.err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.err
}

// violate panics with a ContractError for op
func violate(op, format string, args ...any) {
	panic(&ContractError{Op: op, err: errors.Errorf(format, args...)})
}
