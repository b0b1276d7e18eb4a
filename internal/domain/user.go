package domain

import "time"

// UserRole enumerates dashboard roles. The role is carried on tokens and
// profiles but no endpoint currently restricts by it beyond requiring a
// valid token; access is deliberately open to any authenticated agent.
type UserRole string

const (
	UserRoleAgent UserRole = "agent"
	UserRoleAdmin UserRole = "admin"
)

// User is the domain model for dashboard agents.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
