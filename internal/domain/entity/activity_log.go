package entity

import "time"

// Tipos de acción registrados en la bitácora.
const (
	ActionUserLogin = "User Login"
)

// ActivityLog es la bitácora de auditoría de la plataforma. La consumen el
// motor de riesgo (volatilidad de logins, actividad de cuentas expiradas) y
// los chequeos de recencia (lastSeen).
type ActivityLog struct {
	ID         string
	UserID     string
	ActionType string
	Status     string
	Timestamp  time.Time // cero = timestamp malformado en origen
}
