package api

// Employee is the wire form of a staff member.
type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Color          string `json:"color"`
	Phone          string `json:"phone,omitempty"`
	PaymentAccount string `json:"payment_account,omitempty"`
	CreatedAt      int64  `json:"created_at"`
}

type CreateEmployeeRequest struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	Color          string `json:"color,omitempty"` // palette color when empty
	Phone          string `json:"phone,omitempty"`
	PaymentAccount string `json:"payment_account,omitempty"`
}

type CreateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type GetEmployeeRequest struct {
	ID string `json:"id"`
}

type GetEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []*Employee `json:"employees"`
}

type UpdateEmployeeRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Color          string `json:"color,omitempty"` // unchanged when empty
	Phone          string `json:"phone,omitempty"`
	PaymentAccount string `json:"payment_account,omitempty"`
}

type UpdateEmployeeResponse struct {
	Employee *Employee `json:"employee"`
}

type DeleteEmployeeRequest struct {
	ID string `json:"id"`
}

type DeleteEmployeeResponse struct{}
