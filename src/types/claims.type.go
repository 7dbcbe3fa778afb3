package types

import "github.com/golang-jwt/jwt/v4"

type TokenKind string

const (
	TOKEN_ACCESS  TokenKind = "access"
	TOKEN_REFRESH TokenKind = "refresh"
)

type Claims struct {
	Username string    `json:"username"`
	Role     Role      `json:"role"`
	Kind     TokenKind `json:"kind"`
	jwt.RegisteredClaims
}
