package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	analysisDomain "bfsi-los-backend/internal/domain/analysis"
	"bfsi-los-backend/internal/usecase/analysis"
)

type AnalysisHandler struct{ uc *analysis.Usecase }

func NewAnalysisHandler(uc *analysis.Usecase) *AnalysisHandler { return &AnalysisHandler{uc: uc} }

func (h *AnalysisHandler) ListCompanies(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch analysis data"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalysisHandler) GetCompanyDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, analysisDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Analysis not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch analysis detail"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AnalysisHandler) GetRatioTable(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.GetRatioTable(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, analysisDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Analysis not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch ratio table"})
	}
	return c.JSON(http.StatusOK, dto)
}
