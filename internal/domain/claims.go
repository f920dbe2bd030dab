package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do token emitido pelo serviço de identidade.
// A empresa ativa vem do token e é repassada explicitamente aos casos de uso.
type Claims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	UserType  string `json:"user_type"`
	jwt.RegisteredClaims
}

const UserTypeAdmin = "admin"

func (c Claims) IsAdmin() bool {
	return c.UserType == UserTypeAdmin
}
