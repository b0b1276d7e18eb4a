package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// TicketNoteRepository persists the append-only note trail. Notes are never
// updated or deleted; the cascade on ticket deletion lives in the schema.
type TicketNoteRepository interface {
	Create(ctx context.Context, note *domain.TicketNote) error
	ListByTicket(ctx context.Context, ticketID int64) ([]domain.TicketNote, error)
}

type ticketNoteRepository struct {
	pool *pgxpool.Pool
}

// NewTicketNoteRepository instantiates the repository.
func NewTicketNoteRepository(pool *pgxpool.Pool) TicketNoteRepository {
	return &ticketNoteRepository{pool: pool}
}

func (r *ticketNoteRepository) Create(ctx context.Context, note *domain.TicketNote) error {
	const query = `
        INSERT INTO ticket_notes (ticket_id, agent_id, note)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		note.TicketID,
		note.AgentID,
		note.Note,
	).Scan(&note.ID, &note.CreatedAt)
}

func (r *ticketNoteRepository) ListByTicket(ctx context.Context, ticketID int64) ([]domain.TicketNote, error) {
	const query = `
        SELECT n.id, n.ticket_id, n.agent_id, n.note, n.created_at, agent.name
        FROM ticket_notes n
        LEFT JOIN users agent ON agent.id = n.agent_id
        WHERE n.ticket_id=$1
        ORDER BY n.created_at ASC, n.id ASC`

	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketNote
	for rows.Next() {
		var note domain.TicketNote
		if err := rows.Scan(
			&note.ID,
			&note.TicketID,
			&note.AgentID,
			&note.Note,
			&note.CreatedAt,
			&note.AgentName,
		); err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	return result, rows.Err()
}
