package homebox

import "errors"

// ClientError describes a failed Homebox API call.
type ClientError struct {
	operation  string
	statusCode int
	message    string
	cause      error
}

// NewClientError creates a new ClientError.
func NewClientError(operation string, statusCode int, message string, cause error) *ClientError {
	return &ClientError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.cause != nil {
		return e.operation + ": " + e.message + ": " + e.cause.Error()
	}
	return e.operation + ": " + e.message
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error { return e.cause }

// Operation returns the API operation that failed.
func (e *ClientError) Operation() string { return e.operation }

// StatusCode returns the HTTP status code, or 0 when the request never got
// a response.
func (e *ClientError) StatusCode() int { return e.statusCode }

// Message returns the error message.
func (e *ClientError) Message() string { return e.message }

// extractError finds the first *ClientError in an error chain.
func extractError(err error, target **ClientError) bool {
	for err != nil {
		if e, ok := err.(*ClientError); ok {
			*target = e
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
