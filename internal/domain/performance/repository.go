package performance

import "context"

type ReviewRepository interface {
	// Create inserts a review.
	Create(ctx context.Context, r Review) (Review, error)

	// List retrieves reviews joined with employee and reviewer names,
	// newest-first.
	List(ctx context.Context, filter ListFilter) ([]Review, error)

	// ListByEmployee retrieves one employee's reviews, newest-first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)

	// Update applies a partial update. Returns ErrReviewNotFound when no row
	// matches.
	Update(ctx context.Context, id string, req UpdateReviewRequest) error

	// Stats computes the organization-wide aggregates.
	Stats(ctx context.Context) (StatsSummary, error)
}
