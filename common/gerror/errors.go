package gerror

import (
	"errors"
	"net/http"
)

const (
	ErrCodeInternal         Code = "Internal"
	ErrCodeValidationFailed Code = "ValidationFailed"
	ErrCodeNotFound         Code = "NotFound"
	ErrCodeAlreadyExists    Code = "AlreadyExists"
	ErrCodeCycleDetected    Code = "CycleDetected"
	ErrHttpOperationFailed  Code = "HttpOperationFailed"
)

// As locates the first Error in the provided error chain.
func As(err error) (Error, bool) {
	var gErr Error
	if err == nil {
		return gErr, false
	}
	if errors.As(err, &gErr) {
		return gErr, true
	}
	return gErr, false
}

// ToError locates an Error in the provided error chain and returns it if it
// matches the provided code. Otherwise, returns nil.
func ToError(err error, code Code) *Error {
	gErr, ok := As(err)
	if ok && gErr.Code() == code {
		return &gErr
	}
	return nil
}

func NewErrInternal() Error {
	return NewError(
		"An internal server error occurred",
		AudienceExternal,
		ErrCodeInternal,
		http.StatusInternalServerError,
		nil,
	)
}

func NewErrValidationFailed(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeValidationFailed, http.StatusBadRequest, nil)
}

func ToValidationFailed(err error) *Error {
	return ToError(err, ErrCodeValidationFailed)
}

func IsValidationFailed(err error) bool {
	return ToValidationFailed(err) != nil
}

func NewErrNotFound(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeNotFound, http.StatusNotFound, nil)
}

func ToNotFound(err error) *Error {
	return ToError(err, ErrCodeNotFound)
}

func IsNotFound(err error) bool {
	return ToNotFound(err) != nil
}

func NewErrAlreadyExists(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeAlreadyExists, http.StatusBadRequest, nil)
}

func ToAlreadyExists(err error) *Error {
	return ToError(err, ErrCodeAlreadyExists)
}

func IsAlreadyExists(err error) bool {
	return ToAlreadyExists(err) != nil
}

func NewErrCycleDetected(message string) Error {
	return NewError(message, AudienceExternal, ErrCodeCycleDetected, http.StatusBadRequest, nil)
}

func ToCycleDetected(err error) *Error {
	return ToError(err, ErrCodeCycleDetected)
}

func IsCycleDetected(err error) bool {
	return ToCycleDetected(err) != nil
}

func NewErrHttpOperationFailed(message string, httpStatusCode int) Error {
	return NewError(message, AudienceExternal, ErrHttpOperationFailed, httpStatusCode, nil)
}

func ToHttpOperationFailed(err error) *Error {
	return ToError(err, ErrHttpOperationFailed)
}

func IsHttpOperationFailed(err error) bool {
	return ToHttpOperationFailed(err) != nil
}
