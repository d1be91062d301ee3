package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes - bcrypt учитывает не больше 72 байт пароля
const MaxPasswordBytes = 72

// ErrPasswordTooLong возвращается HashPassword для пароля длиннее MaxPasswordBytes
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// passwordCost - стоимость bcrypt. Тесты могут понижать её через SetPasswordCost.
var passwordCost = 12

// SetPasswordCost меняет стоимость хеширования (используется в тестах)
func SetPasswordCost(cost int) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	passwordCost = cost
}

// HashPassword создает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

// CheckPasswordHash проверяет пароль против хеша
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
