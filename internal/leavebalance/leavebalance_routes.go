package leavebalance

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbac middleware.RBACService) {
	balances := r.Group("/leave-balances")
	{
		balances.GET("/me",
			middleware.RBACAuthorize(rbac, "leave_balance", "read_self"),
			handler.GetMine,
		)
		balances.GET("/employees/:employeeId",
			middleware.RBACAuthorize(rbac, "leave_balance", "read"),
			handler.GetForEmployee,
		)
		balances.GET("",
			middleware.RBACAuthorize(rbac, "leave_balance", "read"),
			handler.List,
		)
		balances.PUT("",
			middleware.RBACAuthorize(rbac, "leave_balance", "manage"),
			handler.Update,
		)
		balances.POST("/reset",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbac, "leave_balance", "manage"),
			handler.Reset,
		)
	}
}
