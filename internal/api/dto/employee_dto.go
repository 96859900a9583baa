package dto

// EmployeeCreateRequest carries the create payload; the first five fields are
// mandatory.
type EmployeeCreateRequest struct {
	ID           string  `json:"Emp_ID"`
	Name         string  `json:"Emp_Name"`
	Email        string  `json:"Email_Id"`
	CompanyID    string  `json:"Company_ID"`
	Role         string  `json:"Role"`
	DepartmentID *string `json:"Department_ID"`
	Other        *string `json:"Other"`
	AppRole      *string `json:"App_Role"`
	Password     string  `json:"Password"`
}

// EmployeeUpdateRequest is the fixed field set applied unconditionally.
type EmployeeUpdateRequest struct {
	Name         string  `json:"Emp_Name"`
	Email        string  `json:"Email_Id"`
	CompanyID    string  `json:"Company_ID"`
	DepartmentID *string `json:"Department_ID"`
	Role         string  `json:"Role"`
	Other        *string `json:"Other"`
	AppRole      *string `json:"App_Role"`
}

// EmployeeResponse mirrors the employee column names; the credential hash is
// never serialized.
type EmployeeResponse struct {
	ID           string  `json:"Emp_ID"`
	Name         string  `json:"Emp_Name"`
	Email        string  `json:"Email_Id"`
	CompanyID    string  `json:"Company_ID"`
	DepartmentID *string `json:"Department_ID"`
	Role         string  `json:"Role"`
	Other        *string `json:"Other"`
	AppRole      *string `json:"App_Role"`
}
