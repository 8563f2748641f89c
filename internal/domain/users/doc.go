// Package users defines the credential-store entities and the contracts for
// user management, password hashing, API-key encryption and session tokens.
package users
