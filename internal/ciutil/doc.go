// Package ciutil provides utilities for CI and environment-specific functionality.
//
// This package contains standardized functions for detecting the execution environment (CI, local dev)
// and accessing environment variables in a consistent way. Test helpers use it to decide whether a
// missing external dependency should skip a test locally or fail it in CI.
package ciutil
