package mongoengine

import (
	"errors"
	"fmt"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria"
)

// ErrUnsupportedOperator is returned when an expression references an
// operator that is absent from the native operator registry. This signals
// a defect in the code constructing the expression, not bad data; it is
// never retried.
var ErrUnsupportedOperator = errors.New("operator not supported by the mongo engine")

const (
	symbolEquality       = "" // equality is a direct value match, no operator document
	symbolNotEqual       = "$ne"
	symbolGreaterThan    = "$gt"
	symbolGreaterOrEqual = "$gte"
	symbolLessThan       = "$lt"
	symbolLessOrEqual    = "$lte"
	symbolIn             = "$in"
	symbolAnd            = "$and"
	symbolOr             = "$or"
	symbolNot            = "$not"
)

// nativeSymbols is the single point of truth for operator translation.
// It is populated once and read-only afterwards: extending the supported
// operator set means adding one entry here and one constructor in the
// criteria package, nothing else changes.
var nativeSymbols = map[criteria.Operator]string{
	criteria.OperatorEqual:          symbolEquality,
	criteria.OperatorNotEqual:       symbolNotEqual,
	criteria.OperatorGreaterThan:    symbolGreaterThan,
	criteria.OperatorGreaterOrEqual: symbolGreaterOrEqual,
	criteria.OperatorLessThan:       symbolLessThan,
	criteria.OperatorLessOrEqual:    symbolLessOrEqual,
	criteria.OperatorIn:             symbolIn,
}

// nativeSymbolFor looks up the native operator symbol for a logical operator.
// Construction-time validation makes a miss here effectively unreachable in
// correct code, but the compiler still guards against it and fails fast,
// naming the offending operator.
func nativeSymbolFor(operator criteria.Operator) (string, error) {
	symbol, found := nativeSymbols[operator]
	if !found {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperator, operator)
	}

	return symbol, nil
}
