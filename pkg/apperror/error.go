package apperror

import (
	"fmt"
	"net/http"
)

// ErrorCode はエラーコードを表します
type ErrorCode string

const (
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeConflict        ErrorCode = "CONFLICT"
	CodeNetworkError    ErrorCode = "NETWORK_ERROR"
	CodeCommitError     ErrorCode = "COMMIT_ERROR"
	CodeStorageError    ErrorCode = "STORAGE_ERROR"
	CodeRateLimited     ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
)

// AppError はアプリケーションエラーを表します
type AppError struct {
	Code       ErrorCode    `json:"code"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
	HTTPStatus int          `json:"-"`
	Err        error        `json:"-"`
}

// FieldError はフィールドエラーを表します
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error はerrorインターフェースを実装します
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap は元のエラーを返します
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError はバリデーションエラーを作成します
func NewValidationError(message string, details []FieldError) *AppError {
	return &AppError{
		Code:       CodeValidationError,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInvalidRequestError は不正リクエストエラーを作成します
func NewInvalidRequestError(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUnauthorizedError は認証エラーを作成します
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:       CodeUnauthorized,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewNotFoundError はリソース不在エラーを作成します
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewConflictError は競合エラーを作成します
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

// NewNetworkError はトランスポート障害エラーを作成します
// リクエスト自体が失敗した場合を表し、HTTPエラーレスポンスとは区別されます
func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:       CodeNetworkError,
		Message:    "could not reach the server",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewCommitError はバックエンドのエラーレスポンスを表すエラーを作成します
// message にはサーバーが返したメッセージを渡します
func NewCommitError(message string, httpStatus int) *AppError {
	if message == "" {
		message = "the server rejected the request"
	}
	if httpStatus < 400 {
		httpStatus = http.StatusBadGateway
	}
	return &AppError{
		Code:       CodeCommitError,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// NewStorageError はオブジェクトストレージ障害エラーを作成します
func NewStorageError(err error) *AppError {
	return &AppError{
		Code:       CodeStorageError,
		Message:    "failed to upload to storage",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewTooManyRequestsError はレート制限エラーを作成します
func NewTooManyRequestsError(message string) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    message,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// NewInternalError は内部エラーを作成します
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:       CodeInternalError,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode はエラーが特定のコードかどうかを判定します
func (e *AppError) HasCode(code ErrorCode) bool {
	return e.Code == code
}

// IsValidation はバリデーションエラーかどうかを判定します
func IsValidation(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeValidationError
	}
	return false
}

// IsNotFound はリソース不在エラーかどうかを判定します
func IsNotFound(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// IsNetwork はトランスポート障害エラーかどうかを判定します
func IsNetwork(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeNetworkError
	}
	return false
}

// IsCommit はバックエンド拒否エラーかどうかを判定します
func IsCommit(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeCommitError
	}
	return false
}

// IsStorage はストレージ障害エラーかどうかを判定します
func IsStorage(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == CodeStorageError
	}
	return false
}
