package leave

import (
	"context"
	"net/http"

	leaveerrors "go-hrms/internal/leave/errors"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create leave validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString(middleware.KeyEmployeeID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	h.act(c, h.service.Approve)
}

func (h *Handler) Reject(c *gin.Context) {
	h.act(c, h.service.Reject)
}

type actionFunc func(ctx context.Context, actorID, id string, req ActionRequest) (LeaveResponse, error)

func (h *Handler) act(c *gin.Context, fn actionFunc) {
	var req ActionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", apperror.MapValidationError(err).Error())
			return
		}
	}

	resp, err := fn(c.Request.Context(), c.GetString(middleware.KeyUserID), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Status:     c.Query("status"),
		EmployeeID: c.Query("employee_id"),
		LeaveType:  c.Query("leave_type"),
	}
	if raw := c.Query("from"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidDateFormat)
			return
		}
		filter.From = &d
	}
	if raw := c.Query("to"); raw != "" {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidDateFormat)
			return
		}
		filter.To = &d
	}

	resp, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, size := response.PageParams(c)
	items, meta := response.Paginate(resp, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) ListMine(c *gin.Context) {
	resp, err := h.service.ListMine(c.Request.Context(), c.GetString(middleware.KeyEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, size := response.PageParams(c)
	items, meta := response.Paginate(resp, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}
