// Package mongodb provides MongoDB-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It handles the details of client connections, index bootstrap, query
// execution, and mapping between domain entities and stored documents.
package mongodb
