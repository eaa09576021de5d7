package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	summaryDomain "bfsi-los-backend/internal/domain/summary"
	"bfsi-los-backend/internal/usecase/summary"
)

type SummaryHandler struct{ uc *summary.Usecase }

func NewSummaryHandler(uc *summary.Usecase) *SummaryHandler { return &SummaryHandler{uc: uc} }

func (h *SummaryHandler) ListSummaries(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("lead_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch summaries"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SummaryHandler) GetSummary(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	s, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, summaryDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Summary not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch summary"})
	}
	return c.JSON(http.StatusOK, s)
}
