// Package testdb provides utilities specifically for database testing.
// It hands integration tests a connected MongoDB client and isolated,
// self-cleaning collections so tests never share state.
package testdb
