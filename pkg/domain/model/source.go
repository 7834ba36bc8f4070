package model

// SourceInfo is what relabel needs from a GitHub event: where it happened and which ref it built
type SourceInfo struct {
	Owner     string            // Repository owner
	Repo      string            // Repository name
	EventType WebhookEventType  // Event type: "release", "push", etc.
	Ref       RefContext        // Fully qualified git ref (refs/heads/..., refs/tags/...)
	Actor     string            // User who triggered the event
	Metadata  map[string]string // Event-specific metadata
}

// Channel returns the release channel of the source ref
func (s *SourceInfo) Channel() Channel {
	return s.Ref.Channel()
}
