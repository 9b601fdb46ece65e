package transform

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// RequestTransform defines the interface for all paystub request transformations.
// Transforms are composable what-if edits of a normalized request, used by the
// compare command to price alternatives against a base paystub.
type RequestTransform interface {
	// Apply returns a modified copy of the request. The base is never mutated.
	Apply(base domain.PaystubRequest) (domain.PaystubRequest, error)

	// Name returns a short identifier for this transform (e.g., "set_state").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks the transform parameters against the request without applying it.
	Validate(base domain.PaystubRequest) error
}

// ApplyTransforms applies a sequence of transforms to a base request.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base domain.PaystubRequest, transforms []RequestTransform) (domain.PaystubRequest, error) {
	current := base

	for i, transform := range transforms {
		if transform == nil {
			return domain.PaystubRequest{}, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return domain.PaystubRequest{}, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return domain.PaystubRequest{}, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
