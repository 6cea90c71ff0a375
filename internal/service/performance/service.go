package performance

import (
	"context"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/performance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
)

type PerformanceServiceImpl struct {
	reviewRepo   performance.ReviewRepository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(
	reviewRepo performance.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) *PerformanceServiceImpl {
	return &PerformanceServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(r performance.Review) performance.ReviewResponse {
	return performance.ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		ReviewerID:   r.ReviewerID,
		Period:       r.Period,
		Rating:       r.Rating,
		Goals:        r.Goals,
		Feedback:     r.Feedback,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		EmployeeName: r.EmployeeName,
		Department:   r.Department,
		ReviewerName: r.ReviewerName,
	}
}

func toResponses(reviews []performance.Review) []performance.ReviewResponse {
	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, toResponse(r))
	}
	return responses
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context, principal auth.Principal) ([]performance.ReviewResponse, error) {
	var filter performance.ListFilter

	if principal.Role == user.RoleEmployee {
		emp, err := s.employeeRepo.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &emp.ID
	}

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// ListByEmployee implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(reviews), nil
}

// Create implements performance.PerformanceService. The reviewer is always
// the authenticated principal.
func (s *PerformanceServiceImpl) Create(ctx context.Context, principal auth.Principal, req performance.CreateReviewRequest) (performance.CreateReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.CreateReviewResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.CreateReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, performance.Review{
		EmployeeID: req.EmployeeID,
		ReviewerID: principal.UserID,
		Period:     req.Period,
		Rating:     req.Rating,
		Goals:      req.Goals,
		Feedback:   req.Feedback,
	})
	if err != nil {
		return performance.CreateReviewResponse{}, err
	}

	return performance.CreateReviewResponse{
		Message: "Performance review created successfully",
		ID:      created.ID,
	}, nil
}

// Update implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Update(ctx context.Context, id string, req performance.UpdateReviewRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.IsEmpty() {
		return performance.ErrNoFieldsToUpdate
	}
	return s.reviewRepo.Update(ctx, id, req)
}

// Stats implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Stats(ctx context.Context) (performance.StatsSummary, error) {
	return s.reviewRepo.Stats(ctx)
}
