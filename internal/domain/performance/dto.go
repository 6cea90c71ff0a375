package performance

import (
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Rating     int     `json:"rating"`
	Goals      *string `json:"goals,omitempty"`
	Feedback   *string `json:"feedback,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateReviewRequest struct {
	Rating   *int    `json:"rating,omitempty"`
	Goals    *string `json:"goals,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return validator.ValidationErrors{{
			Field:   "rating",
			Message: "rating must be between 1 and 5",
		}}
	}
	return nil
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateReviewRequest) IsEmpty() bool {
	return r.Rating == nil && r.Goals == nil && r.Feedback == nil
}

// ListFilter narrows review listings. EmployeeID is forced by scoping for
// employee-role principals.
type ListFilter struct {
	EmployeeID *string
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	ReviewerID   string  `json:"reviewer_id"`
	Period       string  `json:"period"`
	Rating       int     `json:"rating"`
	Goals        *string `json:"goals"`
	Feedback     *string `json:"feedback"`
	CreatedAt    string  `json:"created_at"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	ReviewerName *string `json:"reviewer_name,omitempty"`
}

type CreateReviewResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// StatsSummary are the organization-wide review aggregates.
type StatsSummary struct {
	TotalReviews int      `json:"total_reviews"`
	AvgRating    *float64 `json:"avg_rating"`
	MaxRating    *int     `json:"max_rating"`
	MinRating    *int     `json:"min_rating"`
}
