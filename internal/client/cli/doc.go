// Package cli provides the interactive PinVault command-line client.
//
// App wires the configuration and the gRPC client to a small REPL. Account
// commands (register, login, passwd) work with email and password; content
// commands (show, get, addfile, addnote, update) additionally prompt for the
// 4-digit PIN, which is read without echo and never stored by the client.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
