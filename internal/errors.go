package internal

import "fmt"

// ConfigurationError represents a missing or invalid runtime setting
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// ValidationError represents a malformed request payload
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

// RemoteServiceError represents a non-2xx response from the completion service
type RemoteServiceError struct {
	StatusCode int
	Body       string
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("completion service error %d: %s", e.StatusCode, e.Body)
}

// MalformedResponseError represents a 2xx response with no extractable content
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s", e.Reason)
}

// MediaAccessError represents an unreadable or unusable meal photo
type MediaAccessError struct {
	Path string
	Err  error
}

func (e *MediaAccessError) Error() string {
	return fmt.Sprintf("media access error: %s: %v", e.Path, e.Err)
}

func (e *MediaAccessError) Unwrap() error {
	return e.Err
}

// StateError represents errors reading or writing persisted chat state
type StateError struct {
	Key string
	Op  string // "open", "get", "set", "delete"
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}
