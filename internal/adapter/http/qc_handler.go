package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	qcDomain "bfsi-los-backend/internal/domain/qc"
	"bfsi-los-backend/internal/usecase/qc"
)

type QCHandler struct{ uc *qc.Usecase }

func NewQCHandler(uc *qc.Usecase) *QCHandler { return &QCHandler{uc: uc} }

func (h *QCHandler) ListRecords(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch qc records"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *QCHandler) GetRecord(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	rec, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, qcDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "QC record not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch qc record"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *QCHandler) CreateRecord(c echo.Context) error {
	var in qc.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	rec, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create qc record"})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *QCHandler) ApproveRecord(c echo.Context) error {
	return h.setStatus(c, h.uc.Approve)
}

func (h *QCHandler) RejectRecord(c echo.Context) error {
	return h.setStatus(c, h.uc.Reject)
}

func (h *QCHandler) setStatus(c echo.Context, fn func(ctx context.Context, id uint64) (*qcDomain.Record, error)) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	rec, err := fn(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, qcDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "QC record not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update qc record"})
	}
	return c.JSON(http.StatusOK, rec)
}
