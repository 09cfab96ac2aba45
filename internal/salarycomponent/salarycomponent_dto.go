package salarycomponent

type CreateComponentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=Earning Deduction"`
	ProRata     bool   `json:"pro_rata"`
	Taxable     bool   `json:"taxable"`
	Description string `json:"description" binding:"max=1000"`
}

type UpdateComponentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Category    string `json:"category" binding:"required,oneof=Earning Deduction"`
	ProRata     bool   `json:"pro_rata"`
	Taxable     bool   `json:"taxable"`
	Description string `json:"description" binding:"max=1000"`
}

type ComponentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ProRata     bool   `json:"pro_rata"`
	Taxable     bool   `json:"taxable"`
	Description string `json:"description,omitempty"`
}
