// Package service contains the application-specific use cases for tasks.
// It orchestrates interactions between domain objects and the persistence
// interface defined in internal/store to fulfill application features.
//
// Services receive their dependencies through constructor injection and
// never depend on a specific storage engine. Store-level errors are
// translated to service-level errors here so that the delivery layer
// (internal/api) only needs to know about this package's sentinels:
//   - expected conditions are returned as sentinel errors (ErrTaskNotFound)
//   - domain validation failures are passed through unchanged
//   - unexpected failures are wrapped in a *TaskServiceError
package service
