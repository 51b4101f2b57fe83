package access

import (
	"slices"

	"dashboard/internal/entities"
)

type State string

const (
	Unauthenticated State = "unauthenticated"
	Loading         State = "loading"
	Authorized      State = "authorized"
	Unauthorized    State = "unauthorized"
)

const (
	LoginPath        = "/login"
	UnauthorizedPath = "/unauthorized"
)

type Decision struct {
	State State
	Role  entities.Role
}

// Redirect куда отправить пользователя, пустая строка если никуда.
func (d Decision) Redirect() string {
	switch d.State {
	case Unauthenticated:
		return LoginPath
	case Unauthorized:
		return UnauthorizedPath
	default:
		return ""
	}
}

// Resolve решает, показывать ли экран, доступный ролям allowed.
//
// Порядок проверок: незавершённая проверка сессии, отсутствие пользователя,
// затем роль. Пустой allowed пускает любого аутентифицированного пользователя.
// Роли сравниваются с учётом регистра.
func Resolve(session *entities.Session, allowed []entities.Role) Decision {
	if session != nil && session.Pending {
		return Decision{State: Loading}
	}

	if session == nil || session.User == nil {
		return Decision{State: Unauthenticated}
	}

	role := session.User.Role
	if len(allowed) == 0 || slices.Contains(allowed, role) {
		return Decision{State: Authorized, Role: role}
	}

	return Decision{State: Unauthorized, Role: role}
}
