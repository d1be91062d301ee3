package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB запроса
	DBContextKey = contextKey("db")

	// CurrentUserKey - ключ для *models.User, установленного AuthMiddleware
	CurrentUserKey = contextKey("current_user")
)
