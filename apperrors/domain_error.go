package apperrors

// DomainError is an expected business-rule failure raised by the
// service layer. It carries the offending field, a client-safe message
// and the HTTP status the controller should answer with. Anything that
// is not a DomainError is treated as an internal fault and never
// reaches the client in detail.
type DomainError struct {
	Field      string `json:"field"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// New builds a DomainError with the default 400 status.
func New(field, message string) *DomainError {
	return &DomainError{Field: field, Message: message, StatusCode: 400}
}

// NewWithStatus builds a DomainError with an explicit status, used for
// the 401 login failure case.
func NewWithStatus(field, message string, statusCode int) *DomainError {
	return &DomainError{Field: field, Message: message, StatusCode: statusCode}
}
