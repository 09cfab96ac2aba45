package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, guard middleware.RBACService) {
	group := r.Group("/rbac")
	group.Use(middleware.RBACAuthorize(guard, "rbac", "read"))
	{
		group.GET("/roles", handler.Roles)
		group.POST("/enforce", handler.Enforce)
	}
}
