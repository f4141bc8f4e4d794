package criteria

import "fmt"

// PropertyNameString is a type alias for the field path of a property
// inside a stored event document.
type PropertyNameString = string

// Property identifies a named field path in a stored event document.
//
// Whether the field actually exists in stored documents is not validated
// here; that is deferred to the storage engine executing the query.
type Property struct {
	name PropertyNameString
}

// P creates a Property for the given field path.
func P(name PropertyNameString) Property {
	return Property{name: name}
}

// Name returns the field path this property refers to.
func (p Property) Name() PropertyNameString {
	return p.name
}

// EqualTo creates an expression matching events whose property equals the operand.
func (p Property) EqualTo(operand any) Criteria {
	return Compare(p, OperatorEqual, operand)
}

// NotEqualTo creates an expression matching events whose property differs from the operand.
func (p Property) NotEqualTo(operand any) Criteria {
	return Compare(p, OperatorNotEqual, operand)
}

// GreaterThan creates an expression matching events whose property is greater than the operand.
func (p Property) GreaterThan(operand any) Criteria {
	return Compare(p, OperatorGreaterThan, operand)
}

// GreaterOrEqual creates an expression matching events whose property is greater than or equal to the operand.
func (p Property) GreaterOrEqual(operand any) Criteria {
	return Compare(p, OperatorGreaterOrEqual, operand)
}

// LessThan creates an expression matching events whose property is less than the operand.
func (p Property) LessThan(operand any) Criteria {
	return Compare(p, OperatorLessThan, operand)
}

// LessOrEqual creates an expression matching events whose property is less than or equal to the operand.
func (p Property) LessOrEqual(operand any) Criteria {
	return Compare(p, OperatorLessOrEqual, operand)
}

// In creates an expression matching events whose property equals any of the given operands.
func (p Property) In(operands ...any) Criteria {
	values := make([]any, len(operands))
	copy(values, operands)

	return Compare(p, OperatorIn, values)
}

// Compare creates a Comparison of the given property, operator and operand.
//
// The Property methods above cover the supported operator set; Compare is the
// low-level constructor they share. An operator outside the supported set is
// rejected when the expression is validated or compiled.
func Compare(property Property, operator Operator, operand any) Comparison {
	return Comparison{
		property: property,
		operator: operator,
		operand:  operand,
	}
}

// Comparison relates a single property to an operand value.
type Comparison struct {
	property Property
	operator Operator
	operand  any
}

func (Comparison) criteriaNode() {}

// Property returns the property being compared.
func (c Comparison) Property() Property {
	return c.property
}

// Operator returns the logical operator of the comparison.
func (c Comparison) Operator() Operator {
	return c.operator
}

// Operand returns the literal value the property is compared against.
func (c Comparison) Operand() any {
	return c.operand
}

func (c Comparison) validate() error {
	if c.property.Name() == "" {
		return fmt.Errorf("%w: property name must not be empty", ErrInvalidCriteria)
	}

	if !c.operator.IsSupported() {
		return fmt.Errorf("%w: unsupported operator %q", ErrInvalidCriteria, c.operator)
	}

	return nil
}
