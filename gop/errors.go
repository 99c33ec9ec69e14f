package gop

import "fmt"

// InvalidModeError reports an unrecognized energy-mapping mode tag. It is
// returned before any array computation is attempted.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid energy mapping mode %q (want \"normalized\" or \"physical\")", e.Mode)
}

// DomainError reports a model parameter outside the domain of the GoP
// formulas, such as a zero characteristic energy (a divisor in the kernel)
// or a non-positive coherence length in physical mode. It is returned
// before any array computation is attempted.
type DomainError struct {
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %s out of domain: %v", e.Param, e.Value)
}
