package domain

// Employee is a helpdesk operator account. ID is assigned externally, not
// generated by this service.
type Employee struct {
	ID           string
	Name         string
	Email        string
	CompanyID    string
	DepartmentID *string
	Role         string
	Other        *string
	AppRole      *string
	PasswordHash string
}
