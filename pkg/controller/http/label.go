package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relabel/pkg/domain/interfaces"
	"github.com/m-mizutani/relabel/pkg/domain/model"
	"github.com/m-mizutani/relabel/pkg/utils/logging"
)

// LabelRequest is the body of POST /api/v1/labels/{kind}.
// An omitted or null ref is treated as an unknown ref.
type LabelRequest struct {
	Candidate string           `json:"candidate"`
	Ref       model.RefContext `json:"ref"`
}

// LabelHandler serves label resolution requests
type LabelHandler struct {
	labelUC interfaces.LabelUseCase
}

// NewLabelHandler creates a new LabelHandler
func NewLabelHandler(labelUC interfaces.LabelUseCase) *LabelHandler {
	return &LabelHandler{labelUC: labelUC}
}

// Handle resolves the label of the request body for the kind in the path
func (h *LabelHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.From(ctx)

	var req LabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid JSON body"), http.StatusBadRequest)
		return
	}

	kind := model.LabelKind(chi.URLParam(r, "kind"))
	result, err := h.labelUC.Resolve(ctx, kind, req.Candidate, req.Ref)
	if err != nil {
		if errors.Is(err, model.ErrInvalidLabelKind) {
			writeError(w, err, http.StatusBadRequest)
			return
		}
		logger.Error("Failed to resolve label", "error", err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, result, http.StatusOK)
}
