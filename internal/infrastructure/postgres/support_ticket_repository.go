package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/tallerpro-api/internal/domain/entity"
	"github.com/tu-usuario/tallerpro-api/internal/domain/repository"
)

var _ repository.SupportTicketRepository = (*SupportTicketRepo)(nil)

// SupportTicketRepo implementación del puerto SupportTicketRepository sobre PostgreSQL.
type SupportTicketRepo struct {
	q Querier
}

// NewSupportTicketRepository construye el adaptador de tickets de soporte.
func NewSupportTicketRepository(q Querier) *SupportTicketRepo {
	return &SupportTicketRepo{q: q}
}

const ticketColumns = `id, user_id, user_name, subject, status, priority, category, created_at`

// Create persiste un ticket de soporte.
func (r *SupportTicketRepo) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		ticket.ID, ticket.UserID, ticket.UserName, ticket.Subject, ticket.Status,
		ticket.Priority, ticket.Category, ticket.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert support ticket: %w", err)
	}
	return nil
}

// ListByUser lista los tickets de una cuenta.
func (r *SupportTicketRepo) ListByUser(ctx context.Context, userID string) ([]entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

// List devuelve todos los tickets de la plataforma.
func (r *SupportTicketRepo) List(ctx context.Context) ([]entity.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list support tickets: %w", err)
	}
	defer rows.Close()
	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]entity.SupportTicket, error) {
	var list []entity.SupportTicket
	for rows.Next() {
		var t entity.SupportTicket
		if err := rows.Scan(&t.ID, &t.UserID, &t.UserName, &t.Subject, &t.Status,
			&t.Priority, &t.Category, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan support ticket: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
