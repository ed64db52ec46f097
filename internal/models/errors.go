package models

// ValidationError: ошибка входных данных, уходит клиенту как 400 {"detail": ...}.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}
