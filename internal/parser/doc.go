// Package parser is the reference consumer of the token stream.
//
// It does not know the grammar. Stream hides ignorable tokens, Group folds
// balanced delimiter pairs into ast nodes and reports every pair it cannot
// close, so callers always get a tree back.
package parser
