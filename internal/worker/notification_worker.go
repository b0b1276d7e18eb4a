package worker

import (
	"github.com/spec-kit/ticket-dashboard/internal/service"
)

// StartNotificationWorker registers event handlers for notifications and
// stats-cache invalidation.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
