package employee

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RBACAuthorize(rbac, "employee", "read"),
			handler.GetAll,
		)
		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbac, "employee", "read"),
			handler.GetOptions,
		)
		employees.GET("/:id",
			middleware.RBACAuthorize(rbac, "employee", "read"),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbac, "employee", "create"),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RBACAuthorize(rbac, "employee", "update"),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RBACAuthorize(rbac, "employee", "delete"),
			handler.Delete,
		)
	}
}
