package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	riskDomain "bfsi-los-backend/internal/domain/risk"
	"bfsi-los-backend/internal/usecase/risk"
)

type RiskHandler struct{ uc *risk.Usecase }

func NewRiskHandler(uc *risk.Usecase) *RiskHandler { return &RiskHandler{uc: uc} }

func (h *RiskHandler) ListRisks(c echo.Context) error {
	qcApproved := c.QueryParam("qc") == "approved"
	out, err := h.uc.List(c.Request().Context(), qcApproved)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch risk records"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiskHandler) GetRiskDetail(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, riskDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Risk record not found"})
		case errors.Is(err, risk.ErrNoExtractedValues):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch risk detail"})
	}
	return c.JSON(http.StatusOK, dto)
}
