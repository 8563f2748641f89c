// Package app wires the domain contracts to the backend connectors and the
// user store. Services validate input, relay the call and record backend
// metrics; transport details stay inside the connectors.
package app
