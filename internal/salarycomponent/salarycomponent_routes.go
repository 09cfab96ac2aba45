package salarycomponent

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	components := r.Group("/salary-components")
	{
		components.GET("", middleware.RBACAuthorize(rbac, "salary", "read"), handler.List)
		components.GET("/:id", middleware.RBACAuthorize(rbac, "salary", "read"), handler.Get)
		components.POST("", middleware.RBACAuthorize(rbac, "salary", "manage"), handler.Create)
		components.PUT("/:id", middleware.RBACAuthorize(rbac, "salary", "manage"), handler.Update)
		components.DELETE("/:id", middleware.RBACAuthorize(rbac, "salary", "manage"), handler.Delete)
	}
}
