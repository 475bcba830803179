// Package travisclient is the entry point for creating Travis CI API
// clients. It normalizes the configured endpoint and wires up the internal
// client implementation.
package travisclient
