package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Portal audit event types.
const (
	EventUserLoggedIn    = "user.logged_in"
	EventUserLoginFailed = "user.login_failed"
	EventUserCreated     = "user.created"
	EventAccessGranted   = "access.granted"
	EventAccessDenied    = "access.denied"
)

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func UserLoggedIn(userID, email string) Event {
	return newEvent(EventUserLoggedIn, map[string]interface{}{
		"user_id": userID,
		"email":   email,
	})
}

func UserLoginFailed(email string) Event {
	return newEvent(EventUserLoginFailed, map[string]interface{}{
		"email": email,
	})
}

func UserCreated(userID, email, role string) Event {
	return newEvent(EventUserCreated, map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    role,
	})
}

func AccessGranted(actorID, targetID, module, level string) Event {
	return newEvent(EventAccessGranted, map[string]interface{}{
		"actor_id":  actorID,
		"target_id": targetID,
		"module":    module,
		"level":     level,
	})
}

func AccessDenied(userID, module, minimum string) Event {
	return newEvent(EventAccessDenied, map[string]interface{}{
		"user_id": userID,
		"module":  module,
		"minimum": minimum,
	})
}

// RegisterAuditLogger attaches a slog subscriber for every portal audit
// event so the trail lands in the structured log stream.
func RegisterAuditLogger(bus *EventBus, logger *slog.Logger) {
	types := []string{
		EventUserLoggedIn,
		EventUserLoginFailed,
		EventUserCreated,
		EventAccessGranted,
		EventAccessDenied,
	}
	for _, eventType := range types {
		bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
			logger.InfoContext(ctx, "audit event",
				"event_type", event.EventType(),
				"event_id", event.EventID(),
				"data", event.Payload())
			return nil
		})
	}
}
