package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	requests := r.Group("/leave-requests")
	{
		requests.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbac, "leave", "create"),
			handler.Create,
		)
		requests.GET("/me",
			middleware.RBACAuthorize(rbac, "leave", "read_self"),
			handler.ListMine,
		)
		requests.GET("",
			middleware.RBACAuthorize(rbac, "leave", "read"),
			handler.List,
		)
		requests.GET("/:id",
			middleware.RBACAuthorize(rbac, "leave", "read"),
			handler.Get,
		)
		requests.POST("/:id/approve",
			middleware.RBACAuthorize(rbac, "leave", "approve"),
			handler.Approve,
		)
		requests.POST("/:id/reject",
			middleware.RBACAuthorize(rbac, "leave", "approve"),
			handler.Reject,
		)
	}
}
