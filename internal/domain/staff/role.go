package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleCourier Role = "courier"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

// Admins may do everything a courier does.
func (r Role) AtLeast(min Role) bool {
	level := map[Role]int{RoleCourier: 1, RoleAdmin: 2}
	have, ok1 := level[r]
	need, ok2 := level[min]
	return ok1 && ok2 && have >= need
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
