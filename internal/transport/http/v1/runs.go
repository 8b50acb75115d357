package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexandes/agent/internal/domain"
	"github.com/lexandes/agent/internal/service"
)

// SubmitQuestion accepts a question and starts a run in the background.
// POST /v1/questions
func (h *Handler) SubmitQuestion(c echo.Context) error {
	var req domain.QuestionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	run, err := h.service.SubmitQuestion(c.Request().Context(), req.Question)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Reason})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, domain.QuestionResponse{
		RunID:   run.RunID,
		Status:  run.Status,
		Message: "run created and agent started",
	})
}

// GetRun returns the full run state including logs.
// GET /v1/runs/:run_id
func (h *Handler) GetRun(c echo.Context) error {
	runID := c.Param("run_id")

	run, err := h.service.GetRun(c.Request().Context(), runID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if run == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
	}

	return c.JSON(http.StatusOK, run)
}

// GetAnswer returns the simplified answer view for a run.
// GET /v1/runs/:run_id/answer
func (h *Handler) GetAnswer(c echo.Context) error {
	runID := c.Param("run_id")

	answer, err := h.service.GetAnswer(c.Request().Context(), runID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if answer == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
	}

	return c.JSON(http.StatusOK, answer)
}

// ListRuns returns recent runs, newest first. Debug surface.
// GET /v1/runs
func (h *Handler) ListRuns(c echo.Context) error {
	limit := 100
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := h.service.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}
