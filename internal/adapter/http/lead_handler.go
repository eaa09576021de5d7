package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"bfsi-los-backend/internal/adapter/middleware"
	"bfsi-los-backend/internal/aml"
	leadDomain "bfsi-los-backend/internal/domain/lead"
	"bfsi-los-backend/internal/usecase/lead"
)

type LeadHandler struct{ uc *lead.Usecase }

func NewLeadHandler(uc *lead.Usecase) *LeadHandler { return &LeadHandler{uc: uc} }

func (h *LeadHandler) ListLeads(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch leads"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LeadHandler) GetLead(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead id"})
	}
	l, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, leadDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch lead"})
	}
	return c.JSON(http.StatusOK, l)
}

// CreateLead accepts either a plain JSON body or a multipart form with a
// `data` JSON field plus financialDocuments / signature uploads.
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var (
		in        lead.CreateInput
		docs      []leadDomain.StoredFile
		signature *leadDomain.StoredFile
	)

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		}
		if err := json.Unmarshal([]byte(c.FormValue("data")), &in); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data field"})
		}
		for _, fh := range form.File["financialDocuments"] {
			f, err := readUpload(fh)
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read financialDocuments"})
			}
			docs = append(docs, *f)
		}
		if fhs := form.File["signature"]; len(fhs) > 0 {
			f, err := readUpload(fhs[0])
			if err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read signature"})
			}
			signature = f
		}
	} else if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	l, err := h.uc.Create(c.Request().Context(), in, middleware.PrincipalFrom(c), docs, signature)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create lead"})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *LeadHandler) UpdateLead(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead id"})
	}
	var in lead.UpdateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, leadDomain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		case errors.Is(err, lead.ErrAMLNotReady):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update lead"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LeadHandler) DeleteLead(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, leadDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete lead"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}

func (h *LeadHandler) IngestResults(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead id"})
	}
	var in lead.ResultsInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.IngestResults(c.Request().Context(), id, in); err != nil {
		if errors.Is(err, leadDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store analysis results"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": "Analysis results stored"})
}

func (h *LeadHandler) SubmitAML(c echo.Context) error {
	id, target, ok := h.amlParams(c)
	if !ok {
		return nil
	}
	err := h.uc.SubmitAML(c.Request().Context(), id, target)
	switch {
	case err == nil:
		return c.JSON(http.StatusAccepted, map[string]string{"status": string(leadDomain.AMLInitiated)})
	case errors.Is(err, leadDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
	case errors.Is(err, aml.ErrAlreadyRunning):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "screening already in progress"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to submit screening"})
}

func (h *LeadHandler) PollAML(c echo.Context) error {
	id, target, ok := h.amlParams(c)
	if !ok {
		return nil
	}
	status, err := h.uc.PollAML(c.Request().Context(), id, target)
	if err != nil {
		if errors.Is(err, leadDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to read screening status"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": string(status)})
}

func (h *LeadHandler) CancelAML(c echo.Context) error {
	id, target, ok := h.amlParams(c)
	if !ok {
		return nil
	}
	err := h.uc.CancelAML(c.Request().Context(), id, target)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, map[string]string{"status": string(leadDomain.AMLIdle)})
	case errors.Is(err, leadDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Lead not found"})
	case errors.Is(err, aml.ErrNotRunning):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "no screening in progress"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to cancel screening"})
}

// amlParams parses the :id and :target params; on failure the 400 has
// already been written and ok is false.
func (h *LeadHandler) amlParams(c echo.Context) (id uint64, target leadDomain.AMLTarget, ok bool) {
	id, ok = pathID(c, "id")
	if !ok {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lead id"})
		return 0, "", false
	}
	target, err := aml.ParseTarget(c.Param("target"))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "target must be company or director"})
		return 0, "", false
	}
	return id, target, true
}

func readUpload(fh *multipart.FileHeader) (*leadDomain.StoredFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &leadDomain.StoredFile{
		FileName: fh.Filename,
		FileType: fh.Header.Get("Content-Type"),
		FileSize: fh.Size,
		FileData: data,
	}, nil
}
