// Package builtins supplies the intrinsic types every program starts with.
//
// The types are declared in an embedded HCL manifest using the same block
// shapes as source files. Each Registry call returns fresh, unparented
// symbols: the builder adopts them into the root of the program it is
// binding, so two programs never share a built-in symbol.
package builtins
