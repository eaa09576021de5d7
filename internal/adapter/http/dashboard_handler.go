package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bfsi-los-backend/internal/usecase/dashboard"
)

type DashboardHandler struct{ uc *dashboard.Usecase }

func NewDashboardHandler(uc *dashboard.Usecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) ListSnapshots(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, dashboard.ErrNoData) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No data found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch dashboard data"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) GetSnapshot(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}
	s, err := h.uc.GetByYear(c.Request().Context(), year)
	if err != nil {
		if errors.Is(err, dashboard.ErrNoData) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch dashboard data"})
	}
	return c.JSON(http.StatusOK, s)
}
