package payroll

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbac middleware.RBACService,
	rdb *redis.Client,
	limit rate.Limit,
	burst int,
) {
	payroll := r.Group("/payroll")
	{
		payroll.POST("/generate",
			middleware.RateLimitByUser(limit, burst),
			middleware.RBACAuthorize(rbac, "payroll", "manage"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		payroll.POST("/generate-bulk",
			middleware.RateLimitByUser(limit, burst),
			middleware.RBACAuthorize(rbac, "payroll", "manage"),
			middleware.Idempotency(rdb),
			handler.GenerateBulk,
		)
		payroll.POST("/runs", middleware.RBACAuthorize(rbac, "payroll", "manage"), handler.RequestRun)

		payroll.GET("/preview", middleware.RBACAuthorize(rbac, "payroll", "read"), handler.Preview)
		payroll.GET("/payslips", middleware.RBACAuthorize(rbac, "payroll", "read"), handler.List)
		payroll.GET("/payslips/:id", middleware.RBACAuthorize(rbac, "payroll", "read"), handler.Get)
		payroll.GET("/payslips/:id/download", middleware.RBACAuthorize(rbac, "payroll", "read"), handler.Download)
		payroll.POST("/payslips/:id/mark-paid", middleware.RBACAuthorize(rbac, "payroll", "manage"), handler.MarkPaid)

		payroll.GET("/me/payslips/:year/:month", middleware.RBACAuthorize(rbac, "payroll", "read_self"), handler.MyPayslip)
	}
}
