package monad

import (
	"errors"
	"fmt"
)

var (
	// ErrCapability is wrapped by every CapabilityError.
	ErrCapability = errors.New("capability mismatch")
	// ErrInvalidArgument is wrapped by the panics raised for degenerate
	// arguments such as a zero window size.
	ErrInvalidArgument = errors.New("invalid argument")
)

// CapabilityError is the panic value raised when an adaptor is applied to a
// chain that cannot support it.
type CapabilityError struct {
	Op   string
	Need Capability
	Have Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("monad.%s: needs %s, chain is %s: %v", e.Op, e.Need, e.Have, ErrCapability)
}

func (e *CapabilityError) Unwrap() error {
	return ErrCapability
}

func mustPositive(op string, n int) {
	if n <= 0 {
		panic(fmt.Errorf("monad.%s: size must be positive, got %d: %w", op, n, ErrInvalidArgument))
	}
}

func mustNonNegative(op string, n int) {
	if n < 0 {
		panic(fmt.Errorf("monad.%s: count must not be negative, got %d: %w", op, n, ErrInvalidArgument))
	}
}
