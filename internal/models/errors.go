package models

import "net/http"

// GenericErrorMessage is shown when neither a known code nor a server message is available.
const GenericErrorMessage = "요청 처리 중 오류가 발생했습니다."

// ErrorCode is the machine readable error category sent by the backend.
type ErrorCode string

const (
	ErrorCodeAuthRequired       ErrorCode = "AUTH_REQUIRED"
	ErrorCodeInvalidSession     ErrorCode = "INVALID_SESSION"
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeVCFUnavailable     ErrorCode = "VCF_UNAVAILABLE"
	ErrorCodeVCFLoginFailed     ErrorCode = "VCF_LOGIN_FAILED"
	ErrorCodeVCFFetchFailed     ErrorCode = "VCF_FETCH_FAILED"

	// Codes emitted by the backend without a client side translation.
	ErrorCodeVCFTokenExpired ErrorCode = "VCF_TOKEN_EXPIRED"
	ErrorCodeVCFBadResponse  ErrorCode = "VCF_BAD_RESPONSE"
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// APIError is the single error shape produced by the api client.
// Status is the HTTP status of the response or 0 when the request never got one.
type APIError struct {
	Message string
	Status  int
	Code    ErrorCode
	Err     error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether the session was rejected by the backend.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsTransport reports whether the request failed before a response was received.
func (e *APIError) IsTransport() bool {
	return e.Status == 0
}
