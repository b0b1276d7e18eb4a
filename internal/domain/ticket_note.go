package domain

import "time"

// TicketNote is an append-only internal annotation on a ticket. Notes are
// never updated or deleted and do not touch the parent ticket's UpdatedAt:
// "last substantive update" stays distinct from "last annotation".
// AgentName is a read-model field populated by join queries.
type TicketNote struct {
	ID        int64
	TicketID  int64
	AgentID   int64
	Note      string
	CreatedAt time.Time
	AgentName *string
}
