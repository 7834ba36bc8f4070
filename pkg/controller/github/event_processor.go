package github

import (
	"context"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

// EventProcessor turns parsed GitHub webhook payloads into model.SourceInfo
type EventProcessor struct{}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor() *EventProcessor {
	return &EventProcessor{}
}

// ExtractSource returns the ref information of a parsed webhook payload.
// It returns nil without error for event types that carry no ref.
func (p *EventProcessor) ExtractSource(ctx context.Context, eventType model.WebhookEventType, payload any) (*model.SourceInfo, error) {
	logger := logging.From(ctx)

	switch eventType {
	case model.EventTypePush:
		event, ok := payload.(*github.PushEvent)
		if !ok {
			return nil, goerr.New("invalid push event payload")
		}
		return p.extractPush(event)

	case model.EventTypeCreate:
		event, ok := payload.(*github.CreateEvent)
		if !ok {
			return nil, goerr.New("invalid create event payload")
		}
		return p.extractCreate(event)

	case model.EventTypeRelease:
		event, ok := payload.(*github.ReleaseEvent)
		if !ok {
			return nil, goerr.New("invalid release event payload")
		}
		return p.extractRelease(event)

	default:
		logger.Info("Ignoring unsupported event type", "event_type", eventType)
		return nil, nil
	}
}

// extractPush uses the pushed ref, which is already fully qualified
func (p *EventProcessor) extractPush(event *github.PushEvent) (*model.SourceInfo, error) {
	ref := event.GetRef()
	if ref == "" {
		return nil, goerr.New("missing ref in push event")
	}

	return &model.SourceInfo{
		Owner:     event.GetRepo().GetOwner().GetLogin(),
		Repo:      event.GetRepo().GetName(),
		EventType: model.EventTypePush,
		Ref:       model.RefContext(ref),
		Actor:     event.GetSender().GetLogin(),
		Metadata: map[string]string{
			"after":   event.GetAfter(),
			"created": boolString(event.GetCreated()),
			"deleted": boolString(event.GetDeleted()),
		},
	}, nil
}

// extractCreate qualifies the short branch or tag name of a create event
func (p *EventProcessor) extractCreate(event *github.CreateEvent) (*model.SourceInfo, error) {
	name := event.GetRef()
	if name == "" {
		return nil, goerr.New("missing ref in create event")
	}

	var ref string
	switch refType := event.GetRefType(); refType {
	case "branch":
		ref = "refs/heads/" + name
	case "tag":
		ref = "refs/tags/" + name
	default:
		return nil, goerr.New("unknown ref type in create event", goerr.V("ref_type", refType))
	}

	return &model.SourceInfo{
		Owner:     event.GetRepo().GetOwner().GetLogin(),
		Repo:      event.GetRepo().GetName(),
		EventType: model.EventTypeCreate,
		Ref:       model.RefContext(ref),
		Actor:     event.GetSender().GetLogin(),
		Metadata: map[string]string{
			"ref_type":       event.GetRefType(),
			"master_branch":  event.GetMasterBranch(),
			"default_branch": event.GetRepo().GetDefaultBranch(),
		},
	}, nil
}

// extractRelease treats the release target as a branch name. A target given
// as a commit SHA yields a non-release ref.
func (p *EventProcessor) extractRelease(event *github.ReleaseEvent) (*model.SourceInfo, error) {
	if event.GetRepo() == nil {
		return nil, goerr.New("missing repository information in release event")
	}
	if event.GetRelease() == nil {
		return nil, goerr.New("missing release information in release event")
	}

	// Use Get*() helper methods for concise and nil-safe field access
	owner := event.GetRepo().GetOwner().GetLogin()
	repo := event.GetRepo().GetName()
	target := event.GetRelease().GetTargetCommitish()

	if owner == "" || repo == "" || target == "" {
		return nil, goerr.New("missing required fields in release event",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("target_commitish", target),
		)
	}

	return &model.SourceInfo{
		Owner:     owner,
		Repo:      repo,
		EventType: model.EventTypeRelease,
		Ref:       model.RefContext("refs/heads/" + target),
		Actor:     event.GetSender().GetLogin(),
		Metadata: map[string]string{
			"tag_name":     event.GetRelease().GetTagName(),
			"release_name": event.GetRelease().GetName(),
			"prerelease":   boolString(event.GetRelease().GetPrerelease()),
		},
	}, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
