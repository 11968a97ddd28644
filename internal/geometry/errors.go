package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrorKind classifies a [DomainError].
type ErrorKind int

const (
	// DivisionByZero means a divisor that the formulas require to be
	// non-zero is zero, such as the leading coefficient of a parabola or the
	// focal distance of a circle.
	DivisionByZero ErrorKind = iota + 1
	// InvalidParameter means a parameter is outside the domain of the
	// formulas, such as a non-positive semi-axis or a non-finite value.
	InvalidParameter
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case InvalidParameter:
		return "invalid parameter"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for use with errors.Is. Every *DomainError unwraps to one of them.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// DomainError reports which parameter violated which constraint.
type DomainError struct {
	Kind       ErrorKind
	Conic      Kind
	Param      string
	Constraint string
	Value      float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: %s must satisfy %s (got %g)", e.Conic, e.Kind, e.Param, e.Constraint, e.Value)
}

func (e *DomainError) Unwrap() error {
	switch e.Kind {
	case DivisionByZero:
		return ErrDivisionByZero
	case InvalidParameter:
		return ErrInvalidParameter
	default:
		return nil
	}
}

func divisionByZero(conic Kind, param, constraint string, value float64) error {
	return &DomainError{Kind: DivisionByZero, Conic: conic, Param: param, Constraint: constraint, Value: value}
}

func invalidParameter(conic Kind, param, constraint string, value float64) error {
	return &DomainError{Kind: InvalidParameter, Conic: conic, Param: param, Constraint: constraint, Value: value}
}

// requireFinite rejects NaN and infinite inputs; names[i] labels values[i].
func requireFinite(conic Kind, names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidParameter(conic, names[i], "finite value", v)
		}
	}
	return nil
}

// requirePositive rejects semi-axes that are zero or negative.
func requirePositive(conic Kind, name string, v float64) error {
	if v <= 0 {
		return invalidParameter(conic, name, name+" > 0", v)
	}
	return nil
}

// requireFiniteResult rejects geometry that over- or underflowed even though
// every input was finite.
func requireFiniteResult(conic Kind, param string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidParameter(conic, param, "finite geometry", v)
		}
	}
	return nil
}
