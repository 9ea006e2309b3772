package client

// APIError is an application-level failure: the backend answered with a
// non-2xx status. Message is already normalized for display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }
