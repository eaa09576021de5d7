package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"bfsi-los-backend/internal/adapter/middleware"
	memoDomain "bfsi-los-backend/internal/domain/memo"
	"bfsi-los-backend/internal/usecase/memo"
)

type MemoHandler struct{ uc *memo.Usecase }

func NewMemoHandler(uc *memo.Usecase) *MemoHandler { return &MemoHandler{uc: uc} }

func (h *MemoHandler) ListMemos(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch memos"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MemoHandler) GetMemo(c echo.Context) error {
	m, err := h.uc.GetByMemoID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, memoDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Memo not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch memo"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MemoHandler) CreateMemo(c echo.Context) error {
	var in memo.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = middleware.PrincipalFrom(c)
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	m, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, memoDomain.ErrNotEligible):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "borrower is not QC approved"})
		case errors.Is(err, memoDomain.ErrNoSummary):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No summary found for borrower"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create memo"})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MemoHandler) ListEligible(c echo.Context) error {
	out, err := h.uc.ListEligible(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch eligible borrowers"})
	}
	return c.JSON(http.StatusOK, out)
}

type memoStatusReq struct {
	Status string `json:"status" validate:"required,oneof=Draft Approved Declined"`
}

func (h *MemoHandler) UpdateMemoStatus(c echo.Context) error {
	var req memoStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	m, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), memoDomain.Status(req.Status))
	if err != nil {
		if errors.Is(err, memoDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Memo not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update memo status"})
	}
	return c.JSON(http.StatusOK, m)
}
