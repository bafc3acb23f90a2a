package repository

import (
	"context"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
)

// SupportTicketRepository define el puerto de persistencia para SupportTicket.
type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
	ListByUser(ctx context.Context, userID string) ([]entity.SupportTicket, error)
	List(ctx context.Context) ([]entity.SupportTicket, error)
}
