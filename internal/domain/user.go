package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// OwnerSubject identifica o único usuário do painel
const OwnerSubject = "owner"

type Claims struct {
	jwt.RegisteredClaims
}
