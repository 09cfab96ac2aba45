package rbac

// modelConf is a role hierarchy RBAC model: g(child, parent) lets a role
// inherit every permission of its parent.
const modelConf = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR"
	RoleEmployee = "Employee"
)

// roleInheritance lists (role, inherited role) pairs.
var roleInheritance = [][]string{
	{RoleHR, RoleEmployee},
	{RoleAdmin, RoleHR},
}

// defaultPolicies is the built-in permission matrix.
var defaultPolicies = [][]string{
	{RoleEmployee, "attendance", "create"},
	{RoleEmployee, "attendance", "read_self"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "read_self"},
	{RoleEmployee, "leave_balance", "read_self"},
	{RoleEmployee, "leave_policy", "read"},
	{RoleEmployee, "payroll", "read_self"},
	{RoleEmployee, "task", "read"},
	{RoleEmployee, "task", "work"},

	{RoleHR, "attendance", "read"},
	{RoleHR, "attendance", "manage"},
	{RoleHR, "leave", "read"},
	{RoleHR, "leave", "approve"},
	{RoleHR, "leave_balance", "read"},
	{RoleHR, "leave_balance", "manage"},
	{RoleHR, "leave_policy", "manage"},
	{RoleHR, "salary", "read"},
	{RoleHR, "salary", "manage"},
	{RoleHR, "payroll", "read"},
	{RoleHR, "payroll", "manage"},
	{RoleHR, "employee", "read"},
	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "update"},
	{RoleHR, "task", "create"},
	{RoleHR, "task", "manage"},

	{RoleAdmin, "employee", "delete"},
	{RoleAdmin, "rbac", "read"},
}
