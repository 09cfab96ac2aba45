package employee

type CreateEmployeeRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	Email         string `json:"email" binding:"required,email"`
	EmployeeCode  string `json:"employee_code" binding:"omitempty,max=32"`
	Phone         string `json:"phone" binding:"omitempty,max=32"`
	DateOfJoining string `json:"date_of_joining" binding:"omitempty,datetime=2006-01-02"`
	Role          string `json:"role" binding:"omitempty,oneof=Admin HR Employee"`
	Password      string `json:"password" binding:"omitempty,min=8"`
}

type UpdateEmployeeRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"omitempty,max=32"`
	DateOfJoining string `json:"date_of_joining" binding:"omitempty,datetime=2006-01-02"`
	Role          string `json:"role" binding:"omitempty,oneof=Admin HR Employee"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EmployeeResponse struct {
	ID            string `json:"id"`
	EmployeeCode  string `json:"employee_code"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	DateOfJoining string `json:"date_of_joining,omitempty"`
	Role          string `json:"role"`
	Status        string `json:"status"`
}

type EmployeeOption struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
}
