package apperrors

import (
	"fmt"
	"net/http"
)

// --- Auth ---

// ErrInvalidCredentials - неверный email или пароль. Один и тот же ответ
// для неизвестного email и неверного пароля.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect email or password",
	http.StatusUnauthorized,
)

// ErrUnauthorized - токен отсутствует, просрочен, подделан или указывает на удалённый аккаунт.
var ErrUnauthorized = New(
	CodeUnauthorized,
	"auth",
	"Could not validate credentials",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyRegistered - email уже используется.
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"users",
	"Email already registered",
	http.StatusBadRequest,
)

// --- Uploads ---

// ErrInvalidFileType - расширение по умолчанию. Для настроенного расширения - InvalidFileType.
var ErrInvalidFileType = New(
	CodeInvalidFileType,
	"uploads",
	"Only .fit files are allowed",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"uploads",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrFileRequired = New(
	CodeValidationFailed,
	"validation",
	"Field 'file' is required",
	http.StatusUnprocessableEntity,
)

// InvalidFileType называет в сообщении разрешенное расширение. errors.Is(err, ErrInvalidFileType) сохраняется.
func InvalidFileType(extension string) *AppError {
	cp := *ErrInvalidFileType
	cp.Message = fmt.Sprintf("Only %s files are allowed", extension)
	return &cp
}
