package employee

import (
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID     *string  `json:"user_id,omitempty"`
	FullName   string   `json:"full_name"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	HireDate   string   `json:"hire_date"`
	Salary     *float64 `json:"salary,omitempty"`
	Status     string   `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.HireDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName   *string  `json:"full_name,omitempty"`
	Department *string  `json:"department,omitempty"`
	Position   *string  `json:"position,omitempty"`
	HireDate   *string  `json:"hire_date,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	Status     *string  `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.FullName == nil && r.Department == nil && r.Position == nil &&
		r.HireDate == nil && r.Salary == nil && r.Status == nil
}

// ListFilter narrows employee listings. All fields are optional.
type ListFilter struct {
	Department *string
	Status     *string
	Search     *string // case-insensitive substring over full_name and position
}

type EmployeeResponse struct {
	ID         string   `json:"id"`
	UserID     *string  `json:"user_id"`
	FullName   string   `json:"full_name"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	HireDate   string   `json:"hire_date"`
	Salary     *float64 `json:"salary"`
	Status     string   `json:"status"`
	CreatedAt  string   `json:"created_at"`
}

type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employeeId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
