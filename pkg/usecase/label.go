package usecase

import (
	"context"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

type labelUseCase struct{}

var _ interfaces.LabelUseCase = (*labelUseCase)(nil)

// NewLabel creates a new instance of LabelUseCase
func NewLabel() *labelUseCase {
	return &labelUseCase{}
}

// Resolve applies the pre-release rule to candidate. It only fails on an
// unknown kind; the rule itself accepts every candidate and ref.
func (uc *labelUseCase) Resolve(ctx context.Context, kind model.LabelKind, candidate string, ref model.RefContext) (*model.LabelResult, error) {
	if !kind.IsValid() {
		return nil, goerr.Wrap(model.ErrInvalidLabelKind, "cannot resolve label", goerr.V("kind", kind))
	}

	result := &model.LabelResult{
		Kind:      kind,
		Candidate: candidate,
		Ref:       ref,
		Label:     model.ResolveLabel(kind, candidate, ref),
		Channel:   ref.Channel(),
	}

	// informational only, the candidate is never rejected
	_, semverErr := semver.NewVersion(candidate)

	logging.From(ctx).Debug("Resolved label",
		"kind", result.Kind,
		"candidate", result.Candidate,
		"ref", result.Ref,
		"label", result.Label,
		"channel", result.Channel,
		"semver", semverErr == nil,
	)

	return result, nil
}
