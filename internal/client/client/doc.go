// Package client is the CLI's connection to the PinVault server.
//
// # Overview
//
// The Client interface lists every operation the terminal front end needs.
// GRPCClient implements it over the pinvault.VaultService gRPC service: it owns the
// connection, keeps the session tokens, injects the access token through a
// unary interceptor and refreshes it once when the server reports
// "token expired".
//
// # Error Handling
//
// Status codes are mapped to sentinel errors that callers match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrInvalidPin, ErrNotFound,
// ErrInvalidInput and ErrAlreadyExists. Validation details from the server
// are kept in the error text.
package client
