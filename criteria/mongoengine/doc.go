// Package mongoengine translates criteria expressions into the nested
// query documents a MongoDB-like document store accepts as a query filter.
//
// The compiler walks the expression tree recursively and emits one of the
// recognized document shapes per node kind:
//
//	{ "<property>": <value> }                      equality
//	{ "<property>": { "<symbol>": <value> } }      comparison / membership
//	{ "$and": [doc, doc, ...] }                    conjunction, two or more elements
//	{ "$or": [doc, doc, ...] }                     disjunction, two or more elements
//	{ "$not": doc }                                negation, exactly one element
//
// Compilation is deterministic: the same expression always yields a document
// with the same keys in the same order, so query strings are reproducible.
// The resulting Document is handed opaquely to the storage engine's
// query-execution API; this package never executes it.
//
// Common usage pattern:
//
//	compiler, err := mongoengine.NewCompiler(
//		mongoengine.WithLogger(logger),
//		mongoengine.WithQueryCache(256),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	query, err := compiler.Compile(
//		criteria.And(
//			criteria.P("aggregateIdentifier").EqualTo(aggregateID),
//			criteria.P("sequenceNumber").GreaterThan(42),
//		),
//	)
package mongoengine
