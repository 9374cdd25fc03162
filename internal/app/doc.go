// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the binding lifecycle: discover source
// files, parse and bind each of them concurrently, then report diagnostics
// and render the requested symbol trees. It is decoupled from any specific
// entrypoint like a CLI.
package app
