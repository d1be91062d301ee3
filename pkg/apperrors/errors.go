package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError - ошибка, которую можно отдать клиенту. Err и HTTPCode наружу не сериализуются.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{Code: code, Domain: domain, Message: message, HTTPCode: httpCode}
}

func (e *AppError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is сравнивает по коду и домену: копии из WithDetails/WithError равны исходной ошибке.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Domain == t.Domain
}

// WithDetails возвращает копию; предопределенные ошибки не меняются
func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithError возвращает копию с причиной
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// AsAppError ищет *AppError в цепочке err
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// --- 5xx ---

func InternalError(err error) *AppError {
	return New(CodeInternalError, "system", "Internal server error", http.StatusInternalServerError).WithError(err)
}

// DatabaseError - сбой запроса к БД
func DatabaseError(err error) *AppError {
	return New(CodeDatabaseError, "database", "Internal server error", http.StatusInternalServerError).WithError(err)
}

// StorageError - сбой записи или удаления файла в хранилище
func StorageError(err error) *AppError {
	return New(CodeStorageError, "storage", "Internal server error", http.StatusInternalServerError).WithError(err)
}

// --- 4xx ---

// ValidationError - 422 с картой "поле" -> "сообщение"
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusUnprocessableEntity).WithDetails(details)
}
