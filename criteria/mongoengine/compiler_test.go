package mongoengine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria"
	"github.com/ask4gilles/mongo-criteria-eventstore-go/criteria/mongoengine"
)

func Test_Compile_OperatorRoundTrip(t *testing.T) {
	compiler := newCompiler(t)

	tests := []struct {
		name         string
		build        func() criteria.Criteria
		expectedJSON string
	}{
		{
			name: "equality_matches_the_raw_value_without_an_operator_document",
			build: func() criteria.Criteria {
				return criteria.P("name").EqualTo("value")
			},
			expectedJSON: `{"name":"value"}`,
		},
		{
			name: "not_equal",
			build: func() criteria.Criteria {
				return criteria.P("status").NotEqualTo("archived")
			},
			expectedJSON: `{"status":{"$ne":"archived"}}`,
		},
		{
			name: "greater_than",
			build: func() criteria.Criteria {
				return criteria.P("age").GreaterThan(18)
			},
			expectedJSON: `{"age":{"$gt":18}}`,
		},
		{
			name: "greater_or_equal",
			build: func() criteria.Criteria {
				return criteria.P("age").GreaterOrEqual(21)
			},
			expectedJSON: `{"age":{"$gte":21}}`,
		},
		{
			name: "less_than",
			build: func() criteria.Criteria {
				return criteria.P("sequenceNumber").LessThan(100)
			},
			expectedJSON: `{"sequenceNumber":{"$lt":100}}`,
		},
		{
			name: "less_or_equal",
			build: func() criteria.Criteria {
				return criteria.P("sequenceNumber").LessOrEqual(100)
			},
			expectedJSON: `{"sequenceNumber":{"$lte":100}}`,
		},
		{
			name: "in_membership",
			build: func() criteria.Criteria {
				return criteria.P("eventType").In("TypeA", "TypeB")
			},
			expectedJSON: `{"eventType":{"$in":["TypeA","TypeB"]}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			document, err := compiler.Compile(tc.build())

			require.NoError(t, err)
			assert.Equal(t, tc.expectedJSON, document.String())
		})
	}
}

func Test_Compile_CompositeAndNegationShapes(t *testing.T) {
	compiler := newCompiler(t)

	tests := []struct {
		name         string
		build        func() criteria.Criteria
		expectedJSON string
	}{
		{
			name: "and_with_exactly_two_operands_still_uses_the_list_form",
			build: func() criteria.Criteria {
				return criteria.And(
					criteria.P("a").EqualTo(1),
					criteria.P("b").EqualTo(2),
				)
			},
			expectedJSON: `{"$and":[{"a":1},{"b":2}]}`,
		},
		{
			name: "or_preserves_operand_order",
			build: func() criteria.Criteria {
				return criteria.Or(
					criteria.P("c").EqualTo(3),
					criteria.P("a").EqualTo(1),
					criteria.P("b").EqualTo(2),
				)
			},
			expectedJSON: `{"$or":[{"c":3},{"a":1},{"b":2}]}`,
		},
		{
			name: "inner_or_is_not_flattened_into_the_outer_and",
			build: func() criteria.Criteria {
				return criteria.And(
					criteria.P("a").EqualTo(1),
					criteria.Or(
						criteria.P("b").EqualTo(2),
						criteria.P("c").EqualTo(3),
					),
				)
			},
			expectedJSON: `{"$and":[{"a":1},{"$or":[{"b":2},{"c":3}]}]}`,
		},
		{
			name: "nested_same_combinator_is_not_flattened_either",
			build: func() criteria.Criteria {
				return criteria.And(
					criteria.P("a").EqualTo(1),
					criteria.And(
						criteria.P("b").EqualTo(2),
						criteria.P("c").EqualTo(3),
					),
				)
			},
			expectedJSON: `{"$and":[{"a":1},{"$and":[{"b":2},{"c":3}]}]}`,
		},
		{
			name: "negation_wraps_a_single_child",
			build: func() criteria.Criteria {
				return criteria.Not(criteria.P("a").EqualTo(1))
			},
			expectedJSON: `{"$not":{"a":1}}`,
		},
		{
			name: "negation_of_a_composite",
			build: func() criteria.Criteria {
				return criteria.Not(criteria.Or(
					criteria.P("a").EqualTo(1),
					criteria.P("b").GreaterThan(2),
				))
			},
			expectedJSON: `{"$not":{"$or":[{"a":1},{"b":{"$gt":2}}]}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			document, err := compiler.Compile(tc.build())

			require.NoError(t, err)
			assert.Equal(t, tc.expectedJSON, document.String())
		})
	}
}

func Test_Compile_IsDeterministic(t *testing.T) {
	compiler := newCompiler(t)

	expression := criteria.And(
		criteria.P("aggregateIdentifier").EqualTo("4711"),
		criteria.Or(
			criteria.P("sequenceNumber").GreaterThan(42),
			criteria.P("eventType").In("TypeA", "TypeB"),
		),
	)

	first, firstErr := compiler.Compile(expression)
	second, secondErr := compiler.Compile(expression)

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.Equal(t, first.String(), second.String())
}

func Test_Compile_RejectsMalformedExpressions(t *testing.T) {
	compiler := newCompiler(t)

	tests := []struct {
		name  string
		build func() criteria.Criteria
	}{
		{
			name: "nil_expression",
			build: func() criteria.Criteria {
				return nil
			},
		},
		{
			name: "and_with_a_single_operand",
			build: func() criteria.Criteria {
				return criteria.And(criteria.P("a").EqualTo(1))
			},
		},
		{
			name: "empty_property_name",
			build: func() criteria.Criteria {
				return criteria.P("").EqualTo(1)
			},
		},
		{
			name: "negation_of_nil",
			build: func() criteria.Criteria {
				return criteria.Not(nil)
			},
		},
		{
			name: "malformed_operand_deep_inside_a_valid_tree",
			build: func() criteria.Criteria {
				return criteria.And(
					criteria.P("a").EqualTo(1),
					criteria.Or(criteria.P("b").EqualTo(2)),
				)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			document, err := compiler.Compile(tc.build())

			require.Error(t, err)
			assert.ErrorIs(t, err, criteria.ErrInvalidCriteria)
			assert.Nil(t, document, "a malformed expression must yield no partial document")
		})
	}
}

func Test_Compile_RejectsOperatorOutsideTheRegistry(t *testing.T) {
	compiler := newCompiler(t)

	expression := criteria.Compare(criteria.P("prop"), criteria.Operator("bla"), "value")

	document, err := compiler.Compile(expression)

	require.Error(t, err)
	assert.ErrorIs(t, err, mongoengine.ErrUnsupportedOperator)
	assert.Contains(t, err.Error(), "bla", "the error must name the offending operator")
	assert.Nil(t, document)
}

func Test_Compile_SharedExpressionFromManyGoroutines(t *testing.T) {
	compiler := newCompiler(t)

	expression := criteria.And(
		criteria.P("aggregateIdentifier").EqualTo("4711"),
		criteria.Not(criteria.P("eventType").In("TypeA", "TypeB")),
		criteria.P("sequenceNumber").GreaterOrEqual(7),
	)

	expected, expectedErr := compiler.Compile(expression)
	require.NoError(t, expectedErr)

	const goroutines = 64

	results := make([]string, goroutines)
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func(slot int) {
			defer wg.Done()

			document, err := compiler.Compile(expression)
			if err == nil {
				results[slot] = document.String()
			}
		}(i)
	}

	wg.Wait()

	for i := 0; i < goroutines; i++ {
		assert.Equal(t, expected.String(), results[i])
	}
}

func Test_Compile_WithQueryCache(t *testing.T) {
	metricsSpy := &metricsCollectorSpy{}

	compiler, err := mongoengine.NewCompiler(
		mongoengine.WithQueryCache(8),
		mongoengine.WithMetrics(metricsSpy),
	)
	require.NoError(t, err)

	expression := criteria.P("age").GreaterThan(18)

	first, firstErr := compiler.Compile(expression)
	require.NoError(t, firstErr)

	// structurally identical expression, not the same value
	second, secondErr := compiler.Compile(criteria.P("age").GreaterThan(18))
	require.NoError(t, secondErr)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, metricsSpy.counterValue("criteria_query_cache_misses"))
	assert.Equal(t, 1, metricsSpy.counterValue("criteria_query_cache_hits"))
}

func Test_Compile_QueryCacheKeepsLookalikeExpressionsApart(t *testing.T) {
	tests := []struct {
		name   string
		first  func() criteria.Criteria
		second func() criteria.Criteria
	}{
		{
			name: "single_list_element_with_a_space_vs_two_elements",
			first: func() criteria.Criteria {
				return criteria.P("x").In("a b")
			},
			second: func() criteria.Criteria {
				return criteria.P("x").In("a", "b")
			},
		},
		{
			name: "list_element_containing_the_separator_characters",
			first: func() criteria.Criteria {
				return criteria.P("x").In("a,b")
			},
			second: func() criteria.Criteria {
				return criteria.P("x").In("a", "b")
			},
		},
		{
			name: "operand_string_mimicking_a_closing_delimiter",
			first: func() criteria.Criteria {
				return criteria.P("x").EqualTo(`a)`)
			},
			second: func() criteria.Criteria {
				return criteria.P("x").EqualTo(`a`)
			},
		},
		{
			name: "pipe_in_the_property_name_vs_pipe_in_the_operand",
			first: func() criteria.Criteria {
				return criteria.P("x|y").EqualTo("z")
			},
			second: func() criteria.Criteria {
				return criteria.P("x").EqualTo("y|z")
			},
		},
		{
			name: "string_operand_vs_numeric_operand_with_the_same_rendering",
			first: func() criteria.Criteria {
				return criteria.P("x").EqualTo("1")
			},
			second: func() criteria.Criteria {
				return criteria.P("x").EqualTo(1)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cached, err := mongoengine.NewCompiler(mongoengine.WithQueryCache(8))
			require.NoError(t, err)

			uncached := newCompiler(t)

			_, firstErr := cached.Compile(tc.first())
			require.NoError(t, firstErr)

			fromCachedCompiler, secondErr := cached.Compile(tc.second())
			require.NoError(t, secondErr)

			fresh, freshErr := uncached.Compile(tc.second())
			require.NoError(t, freshErr)

			assert.Equal(t, fresh.String(), fromCachedCompiler.String(),
				"a cached compiler must never serve one expression's document for another")
		})
	}
}

func Test_Compile_QueryCacheDoesNotCacheFailures(t *testing.T) {
	compiler, err := mongoengine.NewCompiler(mongoengine.WithQueryCache(8))
	require.NoError(t, err)

	malformed := criteria.And(criteria.P("a").EqualTo(1))

	_, firstErr := compiler.Compile(malformed)
	require.Error(t, firstErr)

	_, secondErr := compiler.Compile(malformed)
	require.Error(t, secondErr)
	assert.ErrorIs(t, secondErr, criteria.ErrInvalidCriteria)
}

func Test_NewCompiler_RejectsInvalidCacheSize(t *testing.T) {
	_, err := mongoengine.NewCompiler(mongoengine.WithQueryCache(0))

	require.Error(t, err)
	assert.ErrorIs(t, err, mongoengine.ErrInvalidCacheSize)
}

func Test_Compile_LogsFailures(t *testing.T) {
	loggerSpy := &loggerSpy{}

	compiler, err := mongoengine.NewCompiler(mongoengine.WithLogger(loggerSpy))
	require.NoError(t, err)

	_, compileErr := compiler.Compile(nil)

	require.Error(t, compileErr)
	assert.NotEmpty(t, loggerSpy.errorMessages())
}

func newCompiler(t *testing.T) *mongoengine.Compiler {
	t.Helper()

	compiler, err := mongoengine.NewCompiler()
	require.NoError(t, err)

	return compiler
}
