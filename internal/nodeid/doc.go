/*
Package nodeid provides the addressing scheme for symbols in a bound
program.

An address is a dot-separated sequence of segments, each optionally
carrying an index, e.g. `Point.length.body.if[0].then`. Named declarations
contribute their name; positional children (statements in a block,
call arguments) contribute a keyword and their index.

Segment names may contain any character except `.`, `[`, `]` and white
space, so built-in operator methods are addressable as `number.+`.
*/
package nodeid
