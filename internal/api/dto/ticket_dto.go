package dto

import (
	"time"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
)

// CreateTicketRequest is the external intake payload.
type CreateTicketRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedBy   *int64  `json:"created_by"`
}

// UpdateTicketRequest is a partial update; absent fields stay unchanged,
// present fields (including explicit empty strings) overwrite.
type UpdateTicketRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// AssignTicketRequest sets the assignee; null unassigns.
type AssignTicketRequest struct {
	AssignedTo *int64 `json:"assigned_to"`
}

// CreateNoteRequest payload.
type CreateNoteRequest struct {
	Note string `json:"note"`
}

// TicketSummary is a listing row.
type TicketSummary struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	Category     *string               `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	AssignedTo   *int64                `json:"assigned_to"`
	AssigneeName *string               `json:"assignee_name"`
}

// TicketDetailResponse provides full ticket info including the note trail.
type TicketDetailResponse struct {
	ID           int64                 `json:"id"`
	Title        string                `json:"title"`
	Description  *string               `json:"description"`
	Category     *string               `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	CreatedBy    *int64                `json:"created_by"`
	AssignedTo   *int64                `json:"assigned_to"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	CreatorName  *string               `json:"creator_name"`
	AssigneeName *string               `json:"assignee_name"`
	Notes        []TicketNoteResponse  `json:"notes"`
}

// TicketNoteResponse represents one note.
type TicketNoteResponse struct {
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticket_id"`
	AgentID   int64     `json:"agent_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	AgentName *string   `json:"agent_name"`
}

// NewTicketSummary maps a domain ticket to a listing row.
func NewTicketSummary(ticket *domain.Ticket) TicketSummary {
	return TicketSummary{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Category:     ticket.Category,
		Priority:     ticket.Priority,
		Status:       ticket.Status,
		CreatedAt:    ticket.CreatedAt,
		AssignedTo:   ticket.AssignedTo,
		AssigneeName: ticket.AssigneeName,
	}
}

// NewTicketDetail maps a domain ticket and its notes to the detail shape.
func NewTicketDetail(ticket *domain.Ticket, notes []domain.TicketNote) TicketDetailResponse {
	noteResponses := make([]TicketNoteResponse, 0, len(notes))
	for i := range notes {
		noteResponses = append(noteResponses, NewTicketNoteResponse(&notes[i]))
	}
	return TicketDetailResponse{
		ID:           ticket.ID,
		Title:        ticket.Title,
		Description:  ticket.Description,
		Category:     ticket.Category,
		Priority:     ticket.Priority,
		Status:       ticket.Status,
		CreatedBy:    ticket.CreatedBy,
		AssignedTo:   ticket.AssignedTo,
		CreatedAt:    ticket.CreatedAt,
		UpdatedAt:    ticket.UpdatedAt,
		CreatorName:  ticket.CreatorName,
		AssigneeName: ticket.AssigneeName,
		Notes:        noteResponses,
	}
}

// NewTicketNoteResponse maps a domain note.
func NewTicketNoteResponse(note *domain.TicketNote) TicketNoteResponse {
	return TicketNoteResponse{
		ID:        note.ID,
		TicketID:  note.TicketID,
		AgentID:   note.AgentID,
		Note:      note.Note,
		CreatedAt: note.CreatedAt,
		AgentName: note.AgentName,
	}
}
