package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	githubcontroller "github.com/m-mizutani/relabel/pkg/controller/github"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/async"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

// maxWebhookPayload bounds the body read from GitHub (its own limit is 25MB)
const maxWebhookPayload = 25 << 20

// WebhookHandler handles GitHub webhooks
type WebhookHandler struct {
	secret    string
	webhookUC interfaces.WebhookUseCase
	processor *githubcontroller.EventProcessor
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, webhookUC interfaces.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret:    secret,
		webhookUC: webhookUC,
		processor: githubcontroller.NewEventProcessor(),
	}
}

// Handle processes webhook requests
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	// Read payload
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookPayload))
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Verify signature
	signature := r.Header.Get("X-Hub-Signature-256")
	if !h.verifySignature(body, signature) {
		logger.Warn("Invalid webhook signature")
		writeError(w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	deliveryID := r.Header.Get("X-GitHub-Delivery")
	if deliveryID == "" {
		deliveryID = uuid.NewString()
	}

	eventName := r.Header.Get("X-GitHub-Event")
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventName),
		ReceivedAt: time.Now(),
	}

	switch event.Type {
	case model.EventTypePush, model.EventTypeCreate, model.EventTypeRelease:
		// Parse event using GitHub SDK
		payload, err := github.ParseWebHook(eventName, body)
		if err != nil {
			logger.Error("Failed to parse webhook payload", "error", err)
			writeError(w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
			return
		}

		switch e := payload.(type) {
		case *github.PushEvent:
			event.Repository = e.GetRepo().GetFullName()
			event.Sender = e.GetSender().GetLogin()
		case *github.CreateEvent:
			event.Repository = e.GetRepo().GetFullName()
			event.Sender = e.GetSender().GetLogin()
		case *github.ReleaseEvent:
			event.Action = e.GetAction()
			event.Repository = e.GetRepo().GetFullName()
			event.Sender = e.GetSender().GetLogin()
		}

		if event.IsSupportedEvent() {
			source, err := h.processor.ExtractSource(ctx, event.Type, payload)
			if err != nil {
				logger.Warn("Failed to extract ref from webhook event", "error", err, "id", event.ID)
				writeError(w, err, http.StatusBadRequest)
				return
			}
			event.Source = source
		}

	default:
		// Events without a ref, including ones go-github does not know yet
		event.Type = model.EventTypeUnknown
	}

	// Process event via UseCase
	result, err := h.webhookUC.ProcessEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to process webhook event", "error", err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	async.Dispatch(ctx, "webhook-audit", func(ctx context.Context) error {
		attrs := []any{
			"id", event.ID,
			"event", eventName,
			"repository", event.Repository,
			"status", result.Status,
			"channel", result.Channel,
			"latency_ms", time.Since(event.ReceivedAt).Milliseconds(),
		}
		if event.Source != nil {
			attrs = append(attrs, "actor", event.Source.Actor, "metadata", event.Source.Metadata)
		}
		logging.From(ctx).Info("Webhook delivery handled", attrs...)
		return nil
	})

	writeJSON(w, r, result, http.StatusOK)
}

// verifySignature verifies the webhook signature
func (h *WebhookHandler) verifySignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	// Remove "sha256=" prefix if present
	signature = strings.TrimPrefix(signature, "sha256=")

	// Calculate HMAC-SHA256
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expectedMAC))
}
