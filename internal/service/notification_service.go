package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/events"
)

// NotificationService reacts to ticket events: it logs them, keeps the
// dashboard stats cache coherent, and emits notification stubs when
// endpoints are configured.
type NotificationService struct {
	dispatcher events.Dispatcher
	stats      *StatsService
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, stats *StatsService, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		stats:      stats,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleMutation)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleMutation)
	n.dispatcher.Subscribe(events.EventTicketPriorityChanged, n.handleMutation)
	n.dispatcher.Subscribe(events.EventTicketAssigned, n.handleMutation)
	n.dispatcher.Subscribe(events.EventTicketNoteAdded, n.handleNoteAdded)
}

// handleMutation covers every event that can shift the dashboard counters.
func (n *NotificationService) handleMutation(ctx context.Context, event events.Event) error {
	n.logger.Info("ticket event",
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	if n.stats != nil {
		n.stats.Invalidate(ctx)
	}
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// handleNoteAdded skips cache invalidation: notes never change the counters.
func (n *NotificationService) handleNoteAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("ticket event",
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("event_type", string(event.Type)))
}
