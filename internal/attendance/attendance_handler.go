package attendance

import (
	"net/http"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/calendar"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CheckIn(c *gin.Context) {
	resp, err := h.service.CheckIn(c.Request.Context(), c.GetString(middleware.KeyEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) CheckOut(c *gin.Context) {
	resp, err := h.service.CheckOut(c.Request.Context(), c.GetString(middleware.KeyEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListMine(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListMine(c.Request.Context(), c.GetString(middleware.KeyEmployeeID), from, to)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, size := response.PageParams(c)
	items, meta := response.Paginate(resp, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Report(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	filter := ListFilter{
		EmployeeID: c.Query("employee_id"),
		From:       from,
		To:         to,
		Status:     c.Query("status"),
	}
	if raw := c.Query("date"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			h.writeServiceError(c, attendanceerrors.ErrInvalidDateRange)
			return
		}
		filter.Date = &d
	}

	resp, err := h.service.Report(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, size := response.PageParams(c)
	items, meta := response.Paginate(resp, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Mark(c *gin.Context) {
	var req MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http mark attendance validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.MarkAttendance(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update attendance validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.UpdateRecord(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func parseRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return nil, nil, attendanceerrors.ErrInvalidDateRange
		}
		from = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			return nil, nil, attendanceerrors.ErrInvalidDateRange
		}
		to = &d
	}
	return from, to, nil
}
