package entities

// Session состояние аутентификации, которое приходит извне.
// Pending означает, что проверка роли ещё не завершена.
type Session struct {
	Pending bool
	User    *SessionUser
}

type SessionUser struct {
	ID   int64
	Name string
	Role Role
}
