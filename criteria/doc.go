// Package criteria provides an immutable expression language to describe
// which stored events a query should match.
//
// A criteria expression is a finite tree built from three node kinds:
//   - Comparison: a property related to an operand (equality, ordering, "in")
//   - Composite: an AND/OR combination of two or more expressions
//   - Negation: the logical inverse of exactly one expression
//
// Expressions are pure values. Construction performs no I/O and the
// resulting tree is never mutated, so a criteria expression can be shared
// and compiled concurrently by any number of goroutines without locks.
//
// Common usage pattern:
//
//	expr := criteria.And(
//		criteria.P("aggregateIdentifier").EqualTo(aggregateID),
//		criteria.Or(
//			criteria.P("sequenceNumber").GreaterThan(42),
//			criteria.P("eventType").In("BookCopyLentToReader", "BookCopyReturnedByReader"),
//		),
//	)
//
// The expression is translated into the native query representation of a
// concrete storage engine by an engine package, e.g. mongoengine.
package criteria
