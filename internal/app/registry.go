package app

import (
	"database/sql"

	"go-hrms/internal/attendance"
	"go-hrms/internal/config"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/leavebalance"
	"go-hrms/internal/leavepolicy"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/salarycomponent"
	"go-hrms/internal/salaryprofile"
	"go-hrms/internal/shared/counter"
	"go-hrms/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// modules is the wired service graph shared by the api, worker and consumer.
type modules struct {
	rbac            rbac.Service
	employee        employee.Service
	attendance      attendance.Service
	leavePolicy     leavepolicy.Service
	leaveBalance    leavebalance.Service
	leave           leave.Service
	salaryComponent salarycomponent.Service
	salaryProfile   salaryprofile.Service
	payroll         payroll.Service
	task            task.Service
}

// buildModules wires every feature. rdb may be nil outside the api.
func buildModules(db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) (*modules, error) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	attendanceRepo := attendance.NewRepository(gormDB)
	leavePolicyRepo := leavepolicy.NewRepository(gormDB)
	leaveBalanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	componentRepo := salarycomponent.NewRepository(gormDB)
	profileRepo := salaryprofile.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return nil, err
	}

	// --- Services ---
	m := &modules{rbac: rbac.NewService(enforcer, logger)}
	m.employee = employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	m.attendance = attendance.NewService(db, attendanceRepo, nil, logger)
	m.leavePolicy = leavepolicy.NewService(leavePolicyRepo, logger)
	m.leaveBalance = leavebalance.NewService(db, leaveBalanceRepo, m.leavePolicy, employeeRepo, nil, logger)
	m.leave = leave.NewService(db, leaveRepo, m.leavePolicy, m.leaveBalance, m.attendance, nil, logger)
	m.salaryComponent = salarycomponent.NewService(componentRepo, logger)
	m.salaryProfile = salaryprofile.NewService(db, profileRepo, m.salaryComponent, logger)
	m.payroll = payroll.NewService(db, payrollRepo, m.salaryProfile, m.attendance, employeeRepo, outboxRepo, nil, logger)
	m.task = task.NewService(taskRepo, nil, logger)

	return m, nil
}

func registerRoutes(
	router *gin.Engine,
	m *modules,
	cfg *config.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	limit := rate.Limit(cfg.Payroll.RateLimit)
	burst := cfg.Payroll.RateLimitBurst

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.ContextLogger(logger),
	)
	{
		rbac.RegisterRoutes(api, rbac.NewHandler(m.rbac), m.rbac)
		employee.RegisterRoutes(api, employee.NewHandler(m.employee, logger), m.rbac)
		attendance.RegisterRoutes(api, attendance.NewHandler(m.attendance, logger), m.rbac, limit, burst)
		leavepolicy.RegisterRoutes(api, leavepolicy.NewHandler(m.leavePolicy, logger), m.rbac)
		leavebalance.RegisterRoutes(api, leavebalance.NewHandler(m.leaveBalance, logger), m.rbac)
		leave.RegisterRoutes(api, leave.NewHandler(m.leave, logger), m.rbac)
		salarycomponent.RegisterRoutes(api, salarycomponent.NewHandler(m.salaryComponent, logger), m.rbac)
		salaryprofile.RegisterRoutes(api, salaryprofile.NewHandler(m.salaryProfile, logger), m.rbac)
		payroll.RegisterRoutes(api, payroll.NewHandler(m.payroll, rdb, logger), m.rbac, rdb, limit, burst)
		task.RegisterRoutes(api, task.NewHandler(m.task, logger), m.rbac)
	}
}
