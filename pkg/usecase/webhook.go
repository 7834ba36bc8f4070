package usecase

import (
	"context"

	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

type webhookUseCase struct{}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook() *webhookUseCase {
	return &webhookUseCase{}
}

// ProcessEvent classifies the ref of a webhook event into a release channel.
// Events without a usable ref are ignored, not rejected.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) (*model.WebhookResult, error) {
	logger := logging.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() || event.Source == nil {
		logger.Warn("Unsupported event received",
			"type", event.Type,
			"action", event.Action,
		)
		return &model.WebhookResult{Status: model.WebhookStatusIgnored}, nil
	}

	channel := event.Source.Channel()
	logger.Info("Resolved release channel",
		"id", event.ID,
		"ref", event.Source.Ref,
		"channel", channel,
	)

	return &model.WebhookResult{
		Status:  model.WebhookStatusSuccess,
		Ref:     event.Source.Ref,
		Channel: channel,
	}, nil
}
