// Package persistence contains the GORM-backed credential store: the
// database connection factory and the user repository with its persistence
// model.
package persistence
