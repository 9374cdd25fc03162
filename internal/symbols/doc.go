// Package symbols defines the symbol graph produced by the binding pass.
//
// Ownership runs downward: a ProgramRoot owns types, free methods and the
// top-level block, and every node owns its children through named fields,
// slices and Tables. Each node also keeps a non-owning link to its parent so
// later passes can walk up to the enclosing scope. Fields documented as
// deferred are left unset here and filled by resolution and type checking.
//
// The graph is built in a single forward pass and is not mutated by the
// builder afterwards. It is safe for concurrent reads once built.
package symbols
