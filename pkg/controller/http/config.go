package http

import (
	"net/http"

	"github.com/m-mizutani/relabel/pkg/domain/model"
)

// ConfigHandler serves the static release configuration to external tools
type ConfigHandler struct {
	cfg *model.ReleaseConfig
}

// NewConfigHandler creates a new ConfigHandler
func NewConfigHandler(cfg *model.ReleaseConfig) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// HandleChangelog returns the changelog preset
func (h *ConfigHandler) HandleChangelog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.cfg.Changelog, http.StatusOK)
}

// HandleCommitlint returns the commitlint configuration
func (h *ConfigHandler) HandleCommitlint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.cfg.Commitlint, http.StatusOK)
}
