package performance

import (
	"context"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
)

type PerformanceService interface {
	// List returns reviews visible to the principal.
	List(ctx context.Context, principal auth.Principal) ([]ReviewResponse, error)

	// ListByEmployee returns one employee's reviews.
	ListByEmployee(ctx context.Context, employeeID string) ([]ReviewResponse, error)

	// Create records a review authored by the principal.
	Create(ctx context.Context, principal auth.Principal, req CreateReviewRequest) (CreateReviewResponse, error)

	// Update amends rating/goals/feedback of an existing review.
	Update(ctx context.Context, id string, req UpdateReviewRequest) error

	// Stats returns the organization-wide aggregates.
	Stats(ctx context.Context) (StatsSummary, error)
}
