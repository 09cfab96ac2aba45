package rbac_test

import (
	"testing"

	"go-hrms/internal/domain"
	"go-hrms/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	e, err := rbac.NewEnforcer()
	require.NoError(t, err)
	return rbac.NewService(e)
}

func TestEnforce_Matrix(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{rbac.RoleEmployee, "attendance", "create", true},
		{rbac.RoleEmployee, "leave", "approve", false},
		{rbac.RoleEmployee, "payroll", "manage", false},
		{rbac.RoleEmployee, "payroll", "read_self", true},
		{rbac.RoleHR, "leave", "approve", true},
		{rbac.RoleHR, "attendance", "create", true}, // inherited from Employee
		{rbac.RoleHR, "employee", "delete", false},
		{rbac.RoleAdmin, "employee", "delete", true},
		{rbac.RoleAdmin, "payroll", "manage", true},
		{"Contractor", "attendance", "create", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"_"+tt.resource+"_"+tt.action, func(t *testing.T) {
			got, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRolePermissions_IncludesInherited(t *testing.T) {
	roles, err := newService(t).RolePermissions()
	require.NoError(t, err)
	require.Len(t, roles, 3)

	byRole := map[string][]string{}
	for _, r := range roles {
		byRole[r.Role] = r.Permissions
	}
	assert.Contains(t, byRole[rbac.RoleAdmin], "leave:create")
	assert.Contains(t, byRole[rbac.RoleAdmin], "rbac:read")
	assert.NotContains(t, byRole[rbac.RoleEmployee], "payroll:manage")
}
