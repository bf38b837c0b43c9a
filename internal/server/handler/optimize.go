// Package handler provides the HTTP handlers for the optimizer API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sevigo/code-optimizer/internal/core"
)

const maxBodyBytes = 1 << 20

// Optimizer is the review flow the handlers delegate to.
type Optimizer interface {
	ReviewSnippet(ctx context.Context, code, language string) (*core.ReviewReport, error)
	ReviewRepositoryFile(ctx context.Context, repoURL, filePath string) (*core.RepoReviewResult, error)
}

// OptimizeHandler serves the snippet and repository review endpoints.
type OptimizeHandler struct {
	optimizer Optimizer
	logger    *slog.Logger
}

// NewOptimizeHandler creates a handler backed by optimizer.
func NewOptimizeHandler(optimizer Optimizer, logger *slog.Logger) *OptimizeHandler {
	return &OptimizeHandler{optimizer: optimizer, logger: logger}
}

// requestBody holds the loosely typed JSON body. Fields that are absent or not
// strings read as empty, so they fail validation with the usual message.
type requestBody map[string]any

func (b requestBody) str(key string) string {
	s, _ := b[key].(string)
	return s
}

// OptimizeCode handles POST /api/optimize-code.
func (h *OptimizeHandler) OptimizeCode(w http.ResponseWriter, r *http.Request) {
	body := h.decodeBody(w, r)

	report, err := h.optimizer.ReviewSnippet(r.Context(), body.str("code"), body.str("language"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		h.writeError(w, r, status, err)
		return
	}

	h.logger.Info("snippet reviewed", "score", report.Score, "severity", report.Severity)
	WriteJSON(w, http.StatusOK, report)
}

// OptimizeRepo handles POST /api/optimize-repo.
func (h *OptimizeHandler) OptimizeRepo(w http.ResponseWriter, r *http.Request) {
	body := h.decodeBody(w, r)

	result, err := h.optimizer.ReviewRepositoryFile(r.Context(), body.str("repoUrl"), body.str("filePath"))
	if err != nil {
		h.writeError(w, r, repoErrorStatus(err), err)
		return
	}

	h.logger.Info("repository file reviewed", "branch", result.Branch, "score", result.Score)
	WriteJSON(w, http.StatusOK, result)
}

// repoErrorStatus maps a repository flow error to a response status. Remote
// store failures keep the status GitHub answered with.
func repoErrorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidInput), errors.Is(err, core.ErrInvalidLocation):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrMissingCredential):
		return http.StatusInternalServerError
	default:
		return core.HTTPStatus(err, http.StatusInternalServerError)
	}
}

func (h *OptimizeHandler) decodeBody(w http.ResponseWriter, r *http.Request) requestBody {
	body := requestBody{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		h.logger.Debug("unreadable request body", "path", r.URL.Path, "error", err)
		return requestBody{}
	}
	return body
}

func (h *OptimizeHandler) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		h.logger.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
