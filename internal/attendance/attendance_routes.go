package attendance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes mounts /attendances. Check-in and check-out are limited
// per user at limit requests per second with the given burst.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService, limit rate.Limit, burst int) {
	punch := middleware.RateLimitByUser(limit, burst)

	attendances := r.Group("/attendances")
	{
		attendances.POST("/check-in",
			punch,
			middleware.RBACAuthorize(rbac, "attendance", "create"),
			handler.CheckIn,
		)
		attendances.POST("/check-out",
			punch,
			middleware.RBACAuthorize(rbac, "attendance", "create"),
			handler.CheckOut,
		)
		attendances.GET("/me",
			middleware.RBACAuthorize(rbac, "attendance", "read_self"),
			handler.ListMine,
		)
		attendances.GET("",
			middleware.RBACAuthorize(rbac, "attendance", "read"),
			handler.Report,
		)
		attendances.POST("",
			middleware.RBACAuthorize(rbac, "attendance", "manage"),
			handler.Mark,
		)
		attendances.PUT("/:id",
			middleware.RBACAuthorize(rbac, "attendance", "manage"),
			handler.Update,
		)
	}
}
