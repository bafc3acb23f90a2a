package entity

import "time"

// Estados de una solicitud de plan.
const (
	PlanRequestApproved = "approved"
	PlanRequestDenied   = "denied"
	PlanRequestPending  = "pending"
)

// PlanRequest representa la solicitud de un taller para cambiar de plan.
// Entrada del motor de riesgo (fricción de pago) y del agregador de funnel.
type PlanRequest struct {
	ID        string
	ShopID    string // ID de la cuenta USER solicitante
	PlanID    string
	Status    string // approved, denied, pending
	CreatedAt time.Time
}
