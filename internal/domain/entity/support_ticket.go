package entity

import "time"

// Estados de un ticket de soporte.
const (
	TicketPending       = "pending"
	TicketInvestigating = "investigating"
	TicketResolved      = "resolved"
	TicketClosed        = "closed"
)

// SupportTicket representa una queja o solicitud de soporte de una cuenta.
// UserName se conserva porque registros históricos referencian la cuenta por
// nombre en lugar de ID (el motor de riesgo acepta ambos).
type SupportTicket struct {
	ID        string
	UserID    string
	UserName  string
	Subject   string
	Status    string // pending, investigating, resolved, closed
	Priority  string
	Category  string
	CreatedAt time.Time
}
