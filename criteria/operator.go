package criteria

// Operator identifies the logical relation between a property and an operand.
//
// The set of operators is closed: engines translate each member into their
// native operator symbol through a frozen registry, and an Operator outside
// this set is rejected when the expression is compiled.
type Operator string

const (
	OperatorEqual          Operator = "equals"
	OperatorNotEqual       Operator = "notEquals"
	OperatorGreaterThan    Operator = "greaterThan"
	OperatorGreaterOrEqual Operator = "greaterThanEquals"
	OperatorLessThan       Operator = "lessThan"
	OperatorLessOrEqual    Operator = "lessThanEquals"
	OperatorIn             Operator = "in"
)

// supportedOperators is the closed set of logical operators.
// Extending the expression language means adding one constant here,
// one Property method, and one registry entry per engine.
var supportedOperators = map[Operator]struct{}{
	OperatorEqual:          {},
	OperatorNotEqual:       {},
	OperatorGreaterThan:    {},
	OperatorGreaterOrEqual: {},
	OperatorLessThan:       {},
	OperatorLessOrEqual:    {},
	OperatorIn:             {},
}

// IsSupported reports whether the operator is a member of the closed operator set.
func (o Operator) IsSupported() bool {
	_, ok := supportedOperators[o]
	return ok
}

// Combinator identifies how a Composite joins its operands.
type Combinator string

const (
	CombinatorAnd Combinator = "and"
	CombinatorOr  Combinator = "or"
)
