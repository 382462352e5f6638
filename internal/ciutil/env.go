package ciutil

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// Common environment variable names used across the codebase.
// These constants ensure consistent access and prevent typos.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Database connection environment variables
	EnvTestMongoURI = "TASKS_TEST_MONGO_URI" // Preferred name for tests
	EnvDatabaseURI  = "TASKS_DATABASE_URI"
)

// IsCI returns true if the current environment is a CI environment.
// It checks for common CI environment variables across different CI providers.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// GetEnvWithFallbacks returns the value of the first non-empty environment variable
// from the provided list. If no environment variables are set, it returns the defaultValue.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			// Log a warning if a non-primary environment variable is used
			if i > 0 && logger != nil {
				logger.Warn("Using fallback environment variable",
					"used_var", envVar,
					"preferred_var", envVars[0],
					"value", MaskSensitiveValue(val),
				)
			}
			return val
		}
	}
	return defaultValue
}

// GetTestMongoURI returns the MongoDB URI integration tests should use,
// or an empty string when none is configured.
func GetTestMongoURI(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestMongoURI, EnvDatabaseURI}, "", logger)
}

const maskedPassword = "REDACTED"

// MaskSensitiveValue masks the password of connection URIs to prevent
// exposing credentials in logs. Other values are returned unchanged.
func MaskSensitiveValue(value string) string {
	if !strings.Contains(value, "://") {
		return value
	}

	u, err := url.Parse(value)
	if err != nil {
		return value[:strings.Index(value, "://")+3] + maskedPassword
	}

	if u.User == nil {
		return value
	}

	if _, hasPassword := u.User.Password(); !hasPassword {
		return value
	}

	u.User = url.UserPassword(u.User.Username(), maskedPassword)
	return u.String()
}
