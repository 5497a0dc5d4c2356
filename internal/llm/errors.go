package llm

import "fmt"

// ServiceError reports a failed call to the external model service.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model service error: %s", e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
