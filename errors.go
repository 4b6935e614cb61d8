package structural

import "fmt"

// InsufficientDataError is returned when a series does not contain enough
// observations to compute the requested quantity deterministically.
type InsufficientDataError struct {
	// Required is the minimum number of observations
	Required int
	// Actual is the number of observations supplied
	Actual int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: required %d, actual %d", e.Required, e.Actual)
}

// InvalidParameterError is returned when a parameter value violates its
// domain at the API boundary.
type InvalidParameterError struct {
	// Parameter is the name of the offending parameter
	Parameter string
	// Value is the offending value
	Value float64
	// Constraint describes the violated constraint
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter `%s`=%v: %s", e.Parameter, e.Value, e.Constraint)
}

// InvalidDataError is returned when input data is malformed: wrong shape,
// non-finite values and the like.
type InvalidDataError struct {
	// Reason describes what is wrong with the data
	Reason string
}

func (e *InvalidDataError) Error() string {
	return "invalid data: " + e.Reason
}

// NumericalError is returned when a numerical operation produced a non-finite
// intermediate value.
type NumericalError struct {
	// Reason describes the failed quantity
	Reason string
	// Op is the operation the failure originated in
	Op string
}

func (e *NumericalError) Error() string {
	if e.Op == "" {
		return "numerical error: " + e.Reason
	}
	return fmt.Sprintf("numerical error in %s: %s", e.Op, e.Reason)
}

// InstabilityError is returned when a computation became numerically unstable:
// a covariance drifted negative beyond round-off tolerance or an innovation
// variance lost strict positivity.
type InstabilityError struct {
	// Reason describes the unstable quantity
	Reason string
}

func (e *InstabilityError) Error() string {
	return "numerical instability: " + e.Reason
}
