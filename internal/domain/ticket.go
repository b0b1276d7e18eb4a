package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

// Valid reports whether the status is part of the enumeration.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// Valid reports whether the priority is part of the enumeration.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CreatorName and AssigneeName
// are read-model fields populated by join queries and ignored on writes.
type Ticket struct {
	ID           int64
	Title        string
	Description  *string
	Category     *string
	Priority     TicketPriority
	Status       TicketStatus
	CreatedBy    *int64
	AssignedTo   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CreatorName  *string
	AssigneeName *string
}

// DashboardStats aggregates ticket counts for the dashboard. JSON tags double
// as the cache serialization format.
type DashboardStats struct {
	TotalTickets int64 `json:"total_tickets"`
	OpenTickets  int64 `json:"open_tickets"`
	InProgress   int64 `json:"in_progress"`
	Resolved     int64 `json:"resolved"`
	HighPriority int64 `json:"high_priority"`
}
