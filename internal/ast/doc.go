// Package ast holds the generic tree node produced from token ranges.
//
// A Node is a name, a span and ordered children. MakeNode enforces the
// containment rules: every child lies inside the parent span, belongs to the
// same unit, and children follow each other without overlap. Nodes are plain
// values; building a tree never mutates its inputs.
package ast
