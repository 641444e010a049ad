package handlers

import (
	"errors"
	request "garage_api/internal/adapter/http/dto/request"
	response "garage_api/internal/adapter/http/dto/response"
	"garage_api/internal/usecase"
	"garage_api/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)
	errInvalidAppointmentRange   = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid from/to query parameters", http.StatusBadRequest)
)

// AppointmentHandler handles HTTP requests for the workshop calendar.
//
// List responses may contain synthesized entries (synthetic=true) when the
// store has no rows for the requested window. Those entries are derived from
// client and invoice records and cannot be updated or deleted directly.

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

// ListAppointments returns the appointments for the window given by the
// `from` and `to` query parameters. Both accept RFC3339 or a plain
// YYYY-MM-DD; when omitted the window defaults to the current day.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	now := time.Now()

	from, err := parseDayParam(c.Query("from"), now)
	if err != nil {
		c.JSON(errInvalidAppointmentRange.HTTPStatus, errInvalidAppointmentRange.ToHTTPError())
		return
	}
	to, err := parseDayParam(c.Query("to"), from)
	if err != nil {
		c.JSON(errInvalidAppointmentRange.HTTPStatus, errInvalidAppointmentRange.ToHTTPError())
		return
	}

	appointments, err := h.usecase.ListForRange(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointments(appointments))
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAppointment(created))
}

// UpdateAppointment edits an appointment. Edits addressed at a synthesized id
// are materialized as a new persisted appointment instead.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var payload request.AppointmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAppointment(updated))
}

func parseDayParam(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID),
		errors.Is(err, usecase.ErrInvalidAppointmentDate),
		errors.Is(err, usecase.ErrInvalidAppointmentTitle),
		errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSyntheticAppointment):
		return pkg.NewDomainErrorSimple("SYNTHETIC_APPOINTMENT", "Synthetic appointments have no persisted record", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
