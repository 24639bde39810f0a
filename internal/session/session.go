package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles in ascending order of privilege.
const (
	RoleMember     = "member"
	RoleLibrarian  = "librarian"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

var roleRank = map[string]int{
	RoleMember:     1,
	RoleLibrarian:  2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// RoleAtLeast reports whether role has at least the privilege of minimum.
// Unknown roles rank below member.
func RoleAtLeast(role, minimum string) bool {
	return roleRank[role] >= roleRank[minimum]
}

// Claims is the session token payload. The current user is always carried
// explicitly through these claims; there is no ambient global user.
type Claims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate signs a session token for the given user.
func Generate(secret, userID, name, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse validates a session token and returns its claims.
func Parse(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
