package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/usecase"
)

func TestWebhookUseCase_ProcessEvent(t *testing.T) {
	tests := []struct {
		name        string
		event       *model.WebhookEvent
		wantStatus  string
		wantRef     model.RefContext
		wantChannel model.Channel
	}{
		{
			name: "Push to master is a release",
			event: &model.WebhookEvent{
				ID:         "test-delivery-1",
				Type:       model.EventTypePush,
				Repository: "test/repo",
				Sender:     "testuser",
				Source:     &model.SourceInfo{Ref: "refs/heads/master"},
				ReceivedAt: time.Now(),
			},
			wantStatus:  model.WebhookStatusSuccess,
			wantRef:     "refs/heads/master",
			wantChannel: model.ChannelRelease,
		},
		{
			name: "Released release from develop is beta",
			event: &model.WebhookEvent{
				ID:         "test-delivery-2",
				Type:       model.EventTypeRelease,
				Action:     "released",
				Repository: "test/repo",
				Sender:     "testuser",
				Source:     &model.SourceInfo{Ref: "refs/heads/develop"},
				ReceivedAt: time.Now(),
			},
			wantStatus:  model.WebhookStatusSuccess,
			wantRef:     "refs/heads/develop",
			wantChannel: model.ChannelBeta,
		},
		{
			name: "Created release is ignored",
			event: &model.WebhookEvent{
				ID:         "test-delivery-3",
				Type:       model.EventTypeRelease,
				Action:     "created",
				Repository: "test/repo",
				Sender:     "testuser",
				Source:     &model.SourceInfo{Ref: "refs/heads/master"},
				ReceivedAt: time.Now(),
			},
			wantStatus: model.WebhookStatusIgnored,
		},
		{
			name: "Supported event without source is ignored",
			event: &model.WebhookEvent{
				ID:         "test-delivery-4",
				Type:       model.EventTypePush,
				Repository: "test/repo",
				ReceivedAt: time.Now(),
			},
			wantStatus: model.WebhookStatusIgnored,
		},
		{
			name: "Process unknown event type",
			event: &model.WebhookEvent{
				ID:         "test-delivery-5",
				Type:       model.EventTypeUnknown,
				Action:     "unknown",
				Repository: "test/repo",
				Sender:     "testuser",
				ReceivedAt: time.Now(),
			},
			wantStatus: model.WebhookStatusIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewWebhook()
			ctx := context.Background()

			result, err := uc.ProcessEvent(ctx, tt.event)
			gt.NoError(t, err)
			gt.String(t, result.Status).Equal(tt.wantStatus)
			gt.Value(t, result.Ref).Equal(tt.wantRef)
			gt.Value(t, result.Channel).Equal(tt.wantChannel)
		})
	}
}
