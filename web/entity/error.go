package entity

// ApiError is a domain error carrying the HTTP status it should be
// rendered with. Ownership failures and true absence share the same 404 so
// resource ids of other users cannot be probed.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}
