package mongoengine

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria"
)

const (
	logMsgCompileCompleted = "criteria compiled"
	logMsgCompileFailed    = "failed to compile criteria"
	logMsgCacheHit         = "compiled query served from cache"
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrDurationMS      = "duration_ms"
	labelStatus            = "status"
	statusOK               = "ok"
	statusError            = "error"
	metricCompileDuration  = "criteria_compile_duration"
	metricCompileErrors    = "criteria_compile_errors"
	metricCacheHits        = "criteria_query_cache_hits"
	metricCacheMisses      = "criteria_query_cache_misses"
)

// Compiler translates criteria expressions into native query Documents.
//
// Compilation is a pure, non-blocking function of the expression tree: it
// performs no I/O, acquires no external resources, and always terminates in
// O(size of the tree). A Compiler is safe for concurrent use by any number
// of goroutines; the only state it may carry is an optional, internally
// synchronized cache of compiled documents.
type Compiler struct {
	logger           Logger
	metricsCollector MetricsCollector
	queryCache       *lru.Cache[string, Document]
}

// NewCompiler creates a new Compiler with optional configuration.
func NewCompiler(options ...Option) (*Compiler, error) {
	compiler := &Compiler{}

	for _, option := range options {
		if err := option(compiler); err != nil {
			return nil, err
		}
	}

	return compiler, nil
}

// Compile translates the given criteria expression into a native query Document.
//
// The output is deterministic: element order follows operand order exactly,
// nested composites are never flattened, and a composite with exactly two
// operands still uses the list form. A malformed expression yields no
// partial document - the first violation aborts compilation with
// criteria.ErrInvalidCriteria or ErrUnsupportedOperator.
//
// The returned Document must be treated as read-only.
func (c *Compiler) Compile(expression criteria.Criteria) (Document, error) {
	start := time.Now()

	if expression == nil {
		err := fmt.Errorf("%w: expression is nil", criteria.ErrInvalidCriteria)
		c.logError(logMsgCompileFailed, err)
		c.incrementCounter(metricCompileErrors)

		return nil, err
	}

	var cacheKey string

	if c.queryCache != nil {
		cacheKey = fingerprint(expression)

		if document, found := c.queryCache.Get(cacheKey); found {
			c.incrementCounter(metricCacheHits)
			c.logDebug(logMsgCacheHit, logAttrQuery, document.String())

			return document, nil
		}
	}

	document, compileErr := c.compileNode(expression)
	duration := time.Since(start)

	if compileErr != nil {
		c.logError(logMsgCompileFailed, compileErr)
		c.incrementCounter(metricCompileErrors)
		c.recordCompileDuration(duration, statusError)

		return nil, compileErr
	}

	if c.queryCache != nil {
		c.queryCache.Add(cacheKey, document)
		c.incrementCounter(metricCacheMisses)
	}

	c.logDebug(logMsgCompileCompleted, logAttrDurationMS, c.toMilliseconds(duration), logAttrQuery, document.String())
	c.recordCompileDuration(duration, statusOK)

	return document, nil
}

// compileNode translates one expression node, recursing into children.
// One case per node kind of the sealed criteria.Criteria sum type.
func (c *Compiler) compileNode(node criteria.Criteria) (Document, error) {
	switch n := node.(type) {
	case criteria.Comparison:
		return c.compileComparison(n)

	case criteria.Composite:
		return c.compileComposite(n)

	case criteria.Negation:
		return c.compileNegation(n)

	case nil:
		return nil, fmt.Errorf("%w: expression is nil", criteria.ErrInvalidCriteria)

	default:
		return nil, fmt.Errorf("%w: unknown expression node type %T", criteria.ErrInvalidCriteria, node)
	}
}

func (c *Compiler) compileComparison(comparison criteria.Comparison) (Document, error) {
	propertyName := comparison.Property().Name()
	if propertyName == "" {
		return nil, fmt.Errorf("%w: property name must not be empty", criteria.ErrInvalidCriteria)
	}

	symbol, symbolErr := nativeSymbolFor(comparison.Operator())
	if symbolErr != nil {
		return nil, symbolErr
	}

	// Equality matches the raw operand directly; every other operator
	// nests a single-entry operator document under the property name.
	if symbol == symbolEquality {
		return D(E(propertyName, comparison.Operand())), nil
	}

	return D(E(propertyName, D(E(symbol, comparison.Operand())))), nil
}

func (c *Compiler) compileComposite(composite criteria.Composite) (Document, error) {
	operands := composite.Operands()
	if len(operands) < 2 {
		return nil, fmt.Errorf(
			"%w: composite requires at least two operands, got %d",
			criteria.ErrInvalidCriteria, len(operands),
		)
	}

	var symbol string

	switch composite.Combinator() {
	case criteria.CombinatorAnd:
		symbol = symbolAnd
	case criteria.CombinatorOr:
		symbol = symbolOr
	default:
		return nil, fmt.Errorf("%w: unknown combinator %q", criteria.ErrInvalidCriteria, composite.Combinator())
	}

	compiledOperands := make([]Document, 0, len(operands))

	for _, operand := range operands {
		compiledOperand, compileErr := c.compileNode(operand)
		if compileErr != nil {
			return nil, compileErr
		}

		compiledOperands = append(compiledOperands, compiledOperand)
	}

	return D(E(symbol, compiledOperands)), nil
}

func (c *Compiler) compileNegation(negation criteria.Negation) (Document, error) {
	compiledInner, compileErr := c.compileNode(negation.Inner())
	if compileErr != nil {
		return nil, compileErr
	}

	return D(E(symbolNot, compiledInner)), nil
}

// fingerprint derives a cache key from the structural identity of the
// expression tree. Two expressions with the same structure, properties,
// operators, and operands share a fingerprint; no two distinct trees may,
// so every component is either quoted, length-prefixed, or encoded
// element by element.
func fingerprint(expression criteria.Criteria) string {
	var builder strings.Builder
	writeFingerprint(&builder, expression)

	return builder.String()
}

func writeFingerprint(builder *strings.Builder, node criteria.Criteria) {
	switch n := node.(type) {
	case criteria.Comparison:
		fmt.Fprintf(builder, "cmp(%q|%q|", n.Property().Name(), string(n.Operator()))
		writeOperandFingerprint(builder, n.Operand())
		builder.WriteByte(')')

	case criteria.Composite:
		fmt.Fprintf(builder, "%q(", string(n.Combinator()))
		for i, operand := range n.Operands() {
			if i > 0 {
				builder.WriteByte(',')
			}
			writeFingerprint(builder, operand)
		}
		builder.WriteByte(')')

	case criteria.Negation:
		builder.WriteString("not(")
		writeFingerprint(builder, n.Inner())
		builder.WriteByte(')')

	default:
		fmt.Fprintf(builder, "invalid(%T)", node)
	}
}

func writeOperandFingerprint(builder *strings.Builder, operand any) {
	switch v := operand.(type) {
	case string:
		fmt.Fprintf(builder, "string:%q", v)

	case []any:
		builder.WriteString("list[")
		for i, element := range v {
			if i > 0 {
				builder.WriteByte(',')
			}
			writeOperandFingerprint(builder, element)
		}
		builder.WriteByte(']')

	default:
		rendered := fmt.Sprintf("%v", v)
		fmt.Fprintf(builder, "%T:%d:%s", v, len(rendered), rendered)
	}
}
