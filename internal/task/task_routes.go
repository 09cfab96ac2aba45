package task

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	tasks := r.Group("/tasks")
	{
		tasks.POST("",
			middleware.RBACAuthorize(rbac, "task", "create"),
			handler.Create,
		)
		tasks.GET("",
			middleware.RBACAuthorize(rbac, "task", "manage"),
			handler.List,
		)
		tasks.GET("/open",
			middleware.RBACAuthorize(rbac, "task", "read"),
			handler.ListOpen,
		)
		tasks.GET("/me",
			middleware.RBACAuthorize(rbac, "task", "read"),
			handler.ListMine,
		)
		tasks.GET("/employees/:employeeId",
			middleware.RBACAuthorize(rbac, "task", "manage"),
			handler.ListByEmployee,
		)
		tasks.POST("/:id/claim",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbac, "task", "work"),
			handler.Claim,
		)
		tasks.POST("/:id/start",
			middleware.RBACAuthorize(rbac, "task", "work"),
			handler.Start,
		)
		tasks.POST("/:id/pause",
			middleware.RBACAuthorize(rbac, "task", "work"),
			handler.Pause,
		)
		tasks.POST("/:id/complete",
			middleware.RBACAuthorize(rbac, "task", "work"),
			handler.Complete,
		)
	}
}
