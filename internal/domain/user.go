package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleMaster = 1
	RoleViewer = 2
)

type User struct {
	Email    string    `json:"email"`
	RoleID   int       `json:"role_id"`
	IsMaster bool      `json:"is_master"`
	LoggedAt time.Time `json:"logged_at"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

func (c *Claims) IsMaster() bool {
	return c != nil && c.UserRoleID == RoleMaster
}
