// Package visit defines the traversal protocol shared by every data type,
// backbone element and resource in the model.
//
// A traversal calls, for each node:
//
//	PreVisit(n)                 false skips the node entirely
//	VisitStart(name, index, n)
//	Visit(name, index, n)       true descends into the children
//	  ...children in declared field order...
//	VisitEnd(name, index, n)
//	PostVisit(n)
//
// Repeating children are bracketed by VisitListStart and VisitListEnd and
// receive their position as index; single children receive index -1. Raw
// values (resource ids, primitive values, extension urls) are reported with
// VisitValue instead of being wrapped in a node.
//
// Embed DefaultVisitor to implement only the callbacks you need, wrap a
// visitor in a PathVisitor to track element paths, or use Walk for the
// common function-based case.
package visit
