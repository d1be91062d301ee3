package dto

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8,max-bytes=72"`
	BodyWeight *float64 `json:"body_weight"`
	Age        *int     `json:"age" validate:"omitempty,min=1,max=120"`
	Gender     *string  `json:"gender" validate:"omitempty,is-gender"`
	VO2Max     *float64 `json:"vo2max"`
}

// LoginRequest - OAuth2 password form: email передается в поле username
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse - ответ с access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
