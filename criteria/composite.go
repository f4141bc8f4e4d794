package criteria

import "fmt"

// And creates a Composite matching events that satisfy all given expressions.
//
// A conjunction needs at least two operands; anything less is a builder-usage
// error surfaced as ErrInvalidCriteria when the expression is validated or compiled.
func And(operands ...Criteria) Criteria {
	return newComposite(CombinatorAnd, operands)
}

// Or creates a Composite matching events that satisfy any of the given expressions.
//
// A disjunction needs at least two operands; anything less is a builder-usage
// error surfaced as ErrInvalidCriteria when the expression is validated or compiled.
func Or(operands ...Criteria) Criteria {
	return newComposite(CombinatorOr, operands)
}

// Not creates a Negation matching events that do not satisfy the given expression.
func Not(inner Criteria) Criteria {
	return Negation{inner: inner}
}

func newComposite(combinator Combinator, operands []Criteria) Composite {
	owned := make([]Criteria, len(operands))
	copy(owned, operands)

	return Composite{
		combinator: combinator,
		operands:   owned,
	}
}

// Composite joins two or more expressions with a boolean combinator.
//
// Operand order does not affect semantics but is preserved so that
// compilation output is deterministic. Nested composites are kept nested,
// even when a child uses the same combinator.
type Composite struct {
	combinator Combinator
	operands   []Criteria
}

func (Composite) criteriaNode() {}

// Combinator returns how the operands are joined.
func (c Composite) Combinator() Combinator {
	return c.combinator
}

// Operands returns the combined expressions in construction order.
func (c Composite) Operands() []Criteria {
	return c.operands
}

func (c Composite) validate() error {
	if len(c.operands) < 2 {
		return fmt.Errorf("%w: composite requires at least two operands, got %d", ErrInvalidCriteria, len(c.operands))
	}

	for _, operand := range c.operands {
		if err := Validate(operand); err != nil {
			return err
		}
	}

	return nil
}

// Negation wraps exactly one expression and inverts it.
type Negation struct {
	inner Criteria
}

func (Negation) criteriaNode() {}

// Inner returns the wrapped expression.
func (n Negation) Inner() Criteria {
	return n.inner
}

func (n Negation) validate() error {
	return Validate(n.inner)
}
