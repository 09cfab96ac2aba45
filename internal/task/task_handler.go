package task

import (
	"context"
	"net/http"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("task.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("task request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

func (h *Handler) List(c *gin.Context) {
	h.list(c, h.service.List)
}

func (h *Handler) ListOpen(c *gin.Context) {
	h.list(c, h.service.ListOpen)
}

func (h *Handler) ListMine(c *gin.Context) {
	h.list(c, func(ctx context.Context) ([]TaskResponse, error) {
		return h.service.ListMine(ctx, c.GetString(middleware.KeyEmployeeID))
	})
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	h.list(c, func(ctx context.Context) ([]TaskResponse, error) {
		return h.service.ListByEmployee(ctx, c.Param("employeeId"))
	})
}

func (h *Handler) list(c *gin.Context, fn func(ctx context.Context) ([]TaskResponse, error)) {
	resp, err := fn(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	page, size := response.PageParams(c)
	items, meta := response.Paginate(resp, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Claim(c *gin.Context) {
	var req ClaimTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "Invalid input", apperror.MapValidationError(err).Error())
		return
	}

	resp, err := h.service.Claim(c.Request.Context(), c.GetString(middleware.KeyEmployeeID), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Start(c *gin.Context) {
	h.act(c, h.service.Start)
}

func (h *Handler) Pause(c *gin.Context) {
	h.act(c, h.service.Pause)
}

func (h *Handler) Complete(c *gin.Context) {
	h.act(c, h.service.Complete)
}

func (h *Handler) act(c *gin.Context, fn func(ctx context.Context, employeeID, id string) (TaskResponse, error)) {
	resp, err := fn(c.Request.Context(), c.GetString(middleware.KeyEmployeeID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
