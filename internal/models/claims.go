package models

import "github.com/golang-jwt/jwt/v5"

type UserClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// User rebuilds the session user carried by the claims.
func (c *UserClaims) User() *User {
	return &User{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  c.Role,
	}
}
