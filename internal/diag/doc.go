// Package diag carries user-facing diagnostics out of the compiler passes.
//
// Diagnostics are *hcl.Diagnostic values. Passes emit them through a Sink
// and keep going; only the caller decides whether a run failed, usually by
// counting errors in a Collector.
package diag
