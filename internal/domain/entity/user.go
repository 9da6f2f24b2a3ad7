package entity

import (
	"net/mail"
	"strings"
	"time"
)

// User representa una cuenta del portal. IsEmployer e IsSeeker son independientes:
// un usuario puede no tener ninguno, tener uno o ambos.
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsEmployer   bool
	IsSeeker     bool
	CompanyName  string // requerido en la práctica para empleadores, no se fuerza
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActsAsSeeker indica si el usuario entra en las vistas de candidato:
// buscadores explícitos o cualquiera que no sea empleador.
func (u *User) ActsAsSeeker() bool {
	return u.IsSeeker || !u.IsEmployer
}

// ValidEmail acepta solo una dirección simple (sin nombre ni <>) con dominio.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
