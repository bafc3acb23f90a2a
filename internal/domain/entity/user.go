package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. Un USER es la cuenta dueña de un taller (tenant);
// TEAM_MEMBER pertenece a un taller; ADMIN y SUPER_ADMIN operan la plataforma.
const (
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
	RoleTeamMember = "TEAM_MEMBER"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Estados de cuenta.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusPending = "pending"
)

// IsPlatformStaff indica si el rol corresponde a personal de la plataforma
// (excluido del motor de riesgo y de las métricas de ciclo de vida).
func IsPlatformStaff(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// User representa una cuenta de la plataforma (taller, miembro de equipo o staff).
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Name          string
	Role          string // ADMIN, USER, TEAM_MEMBER, SUPER_ADMIN
	Status        string // active, expired, pending
	PlanID        string // vacío = sin plan; "starter" = nivel gratuito
	WalletBalance decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
