// Package errs defines the error taxonomy raised by the service layer and
// translated by the HTTP boundary: not found, already exists, bad request
// and related-resource conflicts. Each kind pairs a sentinel with a struct
// type carrying detail, so callers can match with errors.Is or errors.As.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrAlreadyExists   = errors.New("resource already exists")
	ErrBadRequest      = errors.New("bad request")
	ErrRelatedResource = errors.New("resource has related records")
)

// NotFoundError reports that a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func NewNotFoundError(resource, field string, value any) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: field, Value: value}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado(a) com %s: %v", e.Resource, e.Field, e.Value)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AlreadyExistsError reports a unique-key collision.
type AlreadyExistsError struct {
	Resource string
	Field    string
	Value    any
}

func NewAlreadyExistsError(resource, field string, value any) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, Field: field, Value: value}
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s já existe com %s: %v", e.Resource, e.Field, e.Value)
}

func (e *AlreadyExistsError) Unwrap() error { return ErrAlreadyExists }

// BadRequestError reports a validation failure or an invalid state transition.
type BadRequestError struct {
	Message string
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string { return e.Message }

func (e *BadRequestError) Unwrap() error { return ErrBadRequest }

// RelatedResourceError reports a delete blocked by dependent children.
type RelatedResourceError struct {
	Resource string
	Related  string
}

func NewRelatedResourceError(resource, related string) *RelatedResourceError {
	return &RelatedResourceError{Resource: resource, Related: related}
}

func (e *RelatedResourceError) Error() string {
	return fmt.Sprintf("não é possível excluir o(a) %s pois existem %s associados(as)", e.Resource, e.Related)
}

func (e *RelatedResourceError) Unwrap() error { return ErrRelatedResource }
