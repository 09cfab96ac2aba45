package leavepolicy

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	policies := r.Group("/leave-policies")
	{
		policies.GET("", middleware.RBACAuthorize(rbac, "leave_policy", "read"), handler.List)
		policies.GET("/:type", middleware.RBACAuthorize(rbac, "leave_policy", "read"), handler.Get)
		policies.POST("", middleware.RBACAuthorize(rbac, "leave_policy", "manage"), handler.Create)
		policies.PUT("/:type", middleware.RBACAuthorize(rbac, "leave_policy", "manage"), handler.Update)
		policies.DELETE("/:type", middleware.RBACAuthorize(rbac, "leave_policy", "manage"), handler.Delete)
	}
}
