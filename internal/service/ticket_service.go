package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-dashboard/internal/domain"
	"github.com/spec-kit/ticket-dashboard/internal/events"
	"github.com/spec-kit/ticket-dashboard/internal/repository"
	apperrors "github.com/spec-kit/ticket-dashboard/pkg/util"
)

const (
	maxTitleLength = 500
	defaultLimit   = 50
	maxLimit       = 200
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	notes      repository.TicketNoteRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	NoteRepo   repository.TicketNoteRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes the intake payload.
type TicketCreateInput struct {
	Title       string
	Description *string
	Category    *string
	Priority    domain.TicketPriority
	Status      domain.TicketStatus
	CreatedBy   *int64
}

// TicketListFilter describes listing parameters.
type TicketListFilter struct {
	Status   *string
	Priority *string
	Category *string
	Search   *string
	Skip     int
	Limit    int
}

// TicketPatch carries a partial update. Nil fields are left unchanged;
// non-nil fields overwrite, including explicit empty strings.
type TicketPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		notes:      deps.NoteRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create registers a ticket from the external intake flow.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if len(title) > maxTitleLength {
		return nil, apperrors.NewValidationError("title exceeds 500 characters", nil)
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityMedium
	}
	if input.Status == "" {
		input.Status = domain.TicketStatusOpen
	}
	if !input.Priority.Valid() {
		return nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": input.Priority})
	}
	if !input.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": input.Status})
	}

	ticket := &domain.Ticket{
		Title:       title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      input.Status,
		CreatedBy:   input.CreatedBy,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  input.CreatedBy,
		Payload: events.TicketCreatedPayload{
			Title:    ticket.Title,
			Priority: ticket.Priority,
			Status:   ticket.Status,
		},
	})
	return s.getDetailTicket(ctx, ticket.ID)
}

// List returns a page of tickets matching the conjunctive filters, most
// recently updated first.
func (s *TicketService) List(ctx context.Context, filter TicketListFilter) ([]domain.Ticket, error) {
	repoFilter := repository.TicketFilter{
		Category: filter.Category,
		Search:   filter.Search,
		Offset:   filter.Skip,
		Limit:    filter.Limit,
	}
	if filter.Status != nil {
		status := domain.TicketStatus(*filter.Status)
		repoFilter.Status = &status
	}
	if filter.Priority != nil {
		priority := domain.TicketPriority(*filter.Priority)
		repoFilter.Priority = &priority
	}
	if repoFilter.Limit <= 0 {
		repoFilter.Limit = defaultLimit
	}
	if repoFilter.Limit > maxLimit {
		repoFilter.Limit = maxLimit
	}

	tickets, err := s.tickets.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// GetByID fetches a ticket with creator/assignee names and its full note
// trail in creation order.
func (s *TicketService) GetByID(ctx context.Context, id int64) (*domain.Ticket, []domain.TicketNote, error) {
	ticket, err := s.getDetailTicket(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	notes, err := s.notes.ListByTicket(ctx, id)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return ticket, notes, nil
}

// Update applies a partial-field merge. Absent fields are left untouched,
// present fields overwrite, and updated_at is refreshed on any accepted
// change. Out-of-enum status/priority values are rejected before anything
// is written.
func (s *TicketService) Update(ctx context.Context, actorID int64, id int64, patch TicketPatch) (*domain.Ticket, []domain.TicketNote, error) {
	ticket, err := s.getDetailTicket(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	oldStatus := ticket.Status
	oldPriority := ticket.Priority
	changed := false

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, nil, apperrors.NewValidationError("title cannot be empty", nil)
		}
		if len(title) > maxTitleLength {
			return nil, nil, apperrors.NewValidationError("title exceeds 500 characters", nil)
		}
		ticket.Title = title
		changed = true
	}
	if patch.Description != nil {
		ticket.Description = patch.Description
		changed = true
	}
	if patch.Category != nil {
		ticket.Category = patch.Category
		changed = true
	}
	if patch.Priority != nil {
		priority := domain.TicketPriority(*patch.Priority)
		if !priority.Valid() {
			return nil, nil, apperrors.NewValidationError("invalid priority", map[string]any{"priority": *patch.Priority})
		}
		ticket.Priority = priority
		changed = true
	}
	if patch.Status != nil {
		status := domain.TicketStatus(*patch.Status)
		if !status.Valid() {
			return nil, nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *patch.Status})
		}
		ticket.Status = status
		changed = true
	}

	if changed {
		if err := s.tickets.Update(ctx, ticket); err != nil {
			return nil, nil, s.mapTicketError(err)
		}
	}

	if ticket.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			ActorID:  &actorID,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: ticket.Status,
			},
		})
	}
	if ticket.Priority != oldPriority {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketPriorityChanged,
			TicketID: ticket.ID,
			ActorID:  &actorID,
			Payload: events.TicketPriorityChangedPayload{
				OldPriority: oldPriority,
				NewPriority: ticket.Priority,
			},
		})
	}

	notes, err := s.notes.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return ticket, notes, nil
}

// AddNote appends an internal note. The parent ticket's updated_at is left
// alone: the note trail is a separate audit stream.
func (s *TicketService) AddNote(ctx context.Context, ticketID, agentID int64, text string) (*domain.TicketNote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("note text is required", nil)
	}
	if _, err := s.getDetailTicket(ctx, ticketID); err != nil {
		return nil, err
	}

	note := &domain.TicketNote{
		TicketID: ticketID,
		AgentID:  agentID,
		Note:     text,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketNoteAdded,
		TicketID: ticketID,
		ActorID:  &agentID,
		Payload: events.TicketNoteAddedPayload{
			NoteID:      note.ID,
			AgentID:     agentID,
			NotePreview: stringPreview(note.Note, 120),
		},
	})
	return note, nil
}

// Assign sets or clears the assignee and refreshes updated_at. The assignee
// is not checked for existence here; the assigned_to foreign key is the
// enforcement boundary.
func (s *TicketService) Assign(ctx context.Context, actorID int64, ticketID int64, assigneeID *int64) (*domain.Ticket, []domain.TicketNote, error) {
	ticket, err := s.getDetailTicket(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}

	ticket.AssignedTo = assigneeID
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, nil, s.mapTicketError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  &actorID,
		Payload:  events.TicketAssignedPayload{AssigneeID: assigneeID},
	})

	// Reload so the assignee display name reflects the new reference.
	return s.GetByID(ctx, ticketID)
}

func (s *TicketService) getDetailTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapTicketError(err)
	}
	return ticket, nil
}

func (s *TicketService) mapTicketError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("ticket", nil)
	}
	return apperrors.MapError(err)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
