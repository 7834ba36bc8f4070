package model

import "time"

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePush    WebhookEventType = "push"
	EventTypeCreate  WebhookEventType = "create"
	EventTypeRelease WebhookEventType = "release"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., released)
	Repository string           // Repository full name
	Sender     string           // Sender username
	Source     *SourceInfo      // Ref information, nil for events without a ref
	ReceivedAt time.Time        // Time when the event was received
}

// IsSupportedEvent checks if the event carries a ref relabel can classify
func (e *WebhookEvent) IsSupportedEvent() bool {
	switch e.Type {
	case EventTypePush, EventTypeCreate:
		return true
	case EventTypeRelease:
		return e.Action == "released"
	default:
		return false
	}
}

// WebhookResult is returned to GitHub for every accepted delivery
type WebhookResult struct {
	Status  string     `json:"status"`
	Ref     RefContext `json:"ref,omitempty"`
	Channel Channel    `json:"channel,omitempty"`
}

const (
	WebhookStatusSuccess = "success"
	WebhookStatusIgnored = "ignored"
)
