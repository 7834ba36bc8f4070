package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/relabel/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent decides the release channel of an event's ref
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) (*model.WebhookResult, error)
}

// LabelUseCase resolves pre-release labels
type LabelUseCase interface {
	// Resolve applies the release label rule to candidate for the given ref
	Resolve(ctx context.Context, kind model.LabelKind, candidate string, ref model.RefContext) (*model.LabelResult, error)
}

// ConfigUseCase loads and renders the static release configuration
type ConfigUseCase interface {
	// Load returns the default config merged with the TOML file at path, if any
	Load(ctx context.Context, path string) (*model.ReleaseConfig, error)

	// Render writes v to w in the given format
	Render(w io.Writer, v any, format model.Format) error
}
