package wikipedia

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports an argument outside its allowed domain.
// It is raised before any network traffic happens, so a caller seeing it
// can be sure the upstream API was never contacted.
type InvalidParameterError struct {
	Name string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter: %s", e.Name)
}

// NetworkError wraps a transport-level failure: connection errors, non-2xx
// status codes after the transport exhausted its own policy, or a base URL
// the transport could not turn into a request.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("request to %s failed", e.URL)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// EncodingError means the response body could not be decoded as UTF-8 text.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("response body is not valid text: %v", e.Err)
	}
	return "response body is not valid UTF-8 text"
}

func (e *EncodingError) Unwrap() error { return e.Err }

// DecodeError means the response body was readable text but not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response is not valid JSON: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingPathError reports that the JSON envelope lacked the expected
// macro-structure: an object or array was absent, or present with the wrong
// shape, at the named path. Individual malformed records inside a correctly
// shaped envelope never raise this; they are dropped during extraction.
type MissingPathError struct {
	Path string
}

func (e *MissingPathError) Error() string {
	return fmt.Sprintf("response missing expected structure at %q", e.Path)
}

// APIError carries an error envelope returned by the MediaWiki API itself
// (for example a rejected parameter), as opposed to a transport failure.
type APIError struct {
	Code string
	Info string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error [%s]: %s", e.Code, e.Info)
}

// IsInvalidParameter reports whether err is an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	var invErr *InvalidParameterError
	return errors.As(err, &invErr)
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsEncoding reports whether err is an EncodingError.
func IsEncoding(err error) bool {
	var encErr *EncodingError
	return errors.As(err, &encErr)
}

// IsDecode reports whether err is a DecodeError.
func IsDecode(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}

// IsMissingPath reports whether err is a MissingPathError.
func IsMissingPath(err error) bool {
	var pathErr *MissingPathError
	return errors.As(err, &pathErr)
}

// IsAPIError reports whether err is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
