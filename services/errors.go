package services

// ServiceError carries an HTTP status and a user-visible message out of the
// service layer. Fields holds per-field validation messages when relevant.
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func badRequest(message string) *ServiceError {
	return &ServiceError{StatusCode: 400, Message: message}
}

func notFound(message string) *ServiceError {
	return &ServiceError{StatusCode: 404, Message: message}
}

func internal(message string) *ServiceError {
	return &ServiceError{StatusCode: 500, Message: message}
}
