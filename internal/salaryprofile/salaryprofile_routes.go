package salaryprofile

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	profiles := r.Group("/salary-profiles")
	{
		profiles.GET("/:employeeId", middleware.RBACAuthorize(rbac, "salary", "read"), handler.Get)
		profiles.PUT("/:employeeId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbac, "salary", "manage"),
			handler.Upsert,
		)
	}
}
