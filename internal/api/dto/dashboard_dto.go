package dto

import "github.com/spec-kit/ticket-dashboard/internal/domain"

// DashboardStatsResponse is the stats payload.
type DashboardStatsResponse struct {
	TotalTickets int64 `json:"total_tickets"`
	OpenTickets  int64 `json:"open_tickets"`
	InProgress   int64 `json:"in_progress"`
	Resolved     int64 `json:"resolved"`
	HighPriority int64 `json:"high_priority"`
}

// NewDashboardStatsResponse maps the domain aggregates.
func NewDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalTickets: stats.TotalTickets,
		OpenTickets:  stats.OpenTickets,
		InProgress:   stats.InProgress,
		Resolved:     stats.Resolved,
		HighPriority: stats.HighPriority,
	}
}
