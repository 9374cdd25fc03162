// Package visit is the traversal engine of the binding pass. It maps each
// syntax tree variant to exactly one typed visit operation.
//
// Registration happens at compile time: a type only satisfies Visitor when it
// has a method for every variant of the closed syntax tree. Dispatch on a
// value outside that set is a fatal internal error, never a diagnostic.
package visit
