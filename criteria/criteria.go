package criteria

import (
	"errors"
	"fmt"
)

// ErrInvalidCriteria is returned when a criteria expression is structurally
// malformed: a nil expression, a composite with fewer than two operands,
// an empty property name, or an operator outside the supported set.
var ErrInvalidCriteria = errors.New("invalid criteria expression")

// Criteria is the sum type over all expression node kinds:
// Comparison, Composite and Negation.
//
// It is sealed; engines compile it with one exhaustive type switch.
type Criteria interface {
	criteriaNode()
}

// Validate checks the structural invariants of the whole expression tree.
//
// Engines perform the same checks while compiling, so calling Validate is
// optional; it exists to detect builder-usage errors eagerly, close to where
// the expression is constructed.
func Validate(expression Criteria) error {
	switch node := expression.(type) {
	case nil:
		return fmt.Errorf("%w: expression is nil", ErrInvalidCriteria)

	case Comparison:
		return node.validate()

	case Composite:
		return node.validate()

	case Negation:
		return node.validate()

	default:
		return fmt.Errorf("%w: unknown expression node type %T", ErrInvalidCriteria, expression)
	}
}
