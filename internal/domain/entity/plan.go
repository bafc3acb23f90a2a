package entity

import "github.com/shopspring/decimal"

// Identificadores de plan conocidos. "starter" es el nivel gratuito:
// un PlanID distinto de starter cuenta como cuenta de pago.
const (
	PlanStarter = "starter"
	PlanPremium = "premium"
	PlanGold    = "gold"
)

// Plan representa un nivel de suscripción (precio mensual).
type Plan struct {
	ID    string
	Name  string
	Price decimal.Decimal // precio mensual; base del MRR
}
