package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure. Handlers never branch on error strings;
// they translate the kind into an HTTP status.
type Kind int

const (
	KindInvalidCredentials Kind = iota
	KindMalformedAuthHeader
	KindInvalidToken
	KindRevokedToken
	KindNotLoggedIn
	KindNotFound
	KindConflict
	KindValidation
	KindForbidden
	KindInternal
)

// Error is a typed domain error carrying a user-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func InvalidCredentials(message string) *Error { return New(KindInvalidCredentials, message) }
func MalformedAuthHeader(message string) *Error {
	return New(KindMalformedAuthHeader, message)
}
func InvalidToken(message string) *Error { return New(KindInvalidToken, message) }
func RevokedToken(message string) *Error { return New(KindRevokedToken, message) }
func NotLoggedIn(message string) *Error  { return New(KindNotLoggedIn, message) }
func NotFound(message string) *Error     { return New(KindNotFound, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }
func Forbidden(message string) *Error    { return New(KindForbidden, message) }

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusOf maps an error to the HTTP status the API surface should return.
// Unclassified errors are treated as internal.
func StatusOf(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}

	switch e.Kind {
	case KindInvalidCredentials, KindMalformedAuthHeader, KindInvalidToken, KindRevokedToken, KindNotLoggedIn:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
