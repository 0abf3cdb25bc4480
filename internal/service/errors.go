package service

import "fmt"

// ValidationError rejects a request before anything is written: a required
// field was missing or a value is not recognized. Always recoverable by the
// caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Campo obrigatório: " + field}
}

func invalidValue(field, value string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("Valor inválido para %s: %s", field, value)}
}

// NotFoundError means no order carries the requested protocol number.
type NotFoundError struct {
	Protocol string
}

func (e *NotFoundError) Error() string {
	return "Ordem não encontrada: " + e.Protocol
}

// StorageError surfaces a persistence failure with its cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
