package postgresql

import (
	"context"
	"fmt"

	"github.com/Marshmallowc/hrms-backend/internal/domain/performance"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/database"
	"github.com/google/uuid"
)

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.ReviewRepository {
	return &performanceRepository{db: db}
}

// Create implements performance.ReviewRepository.
func (r *performanceRepository) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	review.ID = uuid.NewString()

	query := `
		INSERT INTO performance_reviews (id, employee_id, reviewer_id, period, rating, goals, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		review.ID,
		review.EmployeeID,
		review.ReviewerID,
		review.Period,
		review.Rating,
		review.Goals,
		review.Feedback,
	).Scan(&review.CreatedAt)

	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return review, nil
}

const reviewSelect = `
	SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.period, pr.rating,
		   pr.goals, pr.feedback, pr.created_at,
		   e.full_name AS employee_name, e.department,
		   u.username AS reviewer_name
	FROM performance_reviews pr
	JOIN employees e ON pr.employee_id = e.id
	JOIN users u ON pr.reviewer_id = u.id
`

func (r *performanceRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		if err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.ReviewerID, &review.Period, &review.Rating,
			&review.Goals, &review.Feedback, &review.CreatedAt,
			&review.EmployeeName, &review.Department, &review.ReviewerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance reviews: %w", err)
	}

	return reviews, nil
}

// List implements performance.ReviewRepository.
func (r *performanceRepository) List(ctx context.Context, filter performance.ListFilter) ([]performance.Review, error) {
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		query := reviewSelect + ` WHERE pr.employee_id = $1 ORDER BY pr.created_at DESC`
		return r.queryReviews(ctx, query, *filter.EmployeeID)
	}
	return r.queryReviews(ctx, reviewSelect+` ORDER BY pr.created_at DESC`)
}

// ListByEmployee implements performance.ReviewRepository.
func (r *performanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	query := reviewSelect + ` WHERE pr.employee_id = $1 ORDER BY pr.created_at DESC`
	return r.queryReviews(ctx, query, employeeID)
}

// Update implements performance.ReviewRepository.
func (r *performanceRepository) Update(ctx context.Context, id string, req performance.UpdateReviewRequest) error {
	q := GetQuerier(ctx, r.db)

	setClause := ""
	args := []interface{}{}
	argIdx := 1

	addSet := func(column string, value interface{}) {
		if setClause != "" {
			setClause += ", "
		}
		setClause += fmt.Sprintf("%s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Rating != nil {
		addSet("rating", *req.Rating)
	}
	if req.Goals != nil {
		addSet("goals", *req.Goals)
	}
	if req.Feedback != nil {
		addSet("feedback", *req.Feedback)
	}

	if setClause == "" {
		return performance.ErrNoFieldsToUpdate
	}

	query := fmt.Sprintf("UPDATE performance_reviews SET %s WHERE id = $%d", setClause, argIdx)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update performance review: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}

	return nil
}

// Stats implements performance.ReviewRepository.
func (r *performanceRepository) Stats(ctx context.Context) (performance.StatsSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), AVG(rating), MAX(rating), MIN(rating)
		FROM performance_reviews
	`

	var stats performance.StatsSummary
	err := q.QueryRow(ctx, query).Scan(
		&stats.TotalReviews, &stats.AvgRating, &stats.MaxRating, &stats.MinRating,
	)
	if err != nil {
		return performance.StatsSummary{}, fmt.Errorf("failed to get performance stats: %w", err)
	}

	return stats, nil
}
