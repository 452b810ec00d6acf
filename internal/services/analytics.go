package services

import (
	"context"
	"fmt"

	"github.com/mmehta29/backend/internal/dtos"
	"github.com/mmehta29/backend/internal/models"
)

// successStatuses is deliberately the same set as models.InterviewStatuses, so
// success_rate currently equals the interview rate.
var successStatuses = models.InterviewStatuses

func (s *applicationService) ProgressAnalytics(ctx context.Context, userID int64) (*dtos.ProgressAnalytics, error) {
	total, err := s.countByStatus(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications for user %d: %w", userID, err)
	}
	interviews, err := s.countByStatus(ctx, userID, models.InterviewStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to count interviews for user %d: %w", userID, err)
	}
	successful, err := s.countByStatus(ctx, userID, successStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to count successful applications for user %d: %w", userID, err)
	}

	return &dtos.ProgressAnalytics{
		TotalSubmissions:   total,
		InterviewsReceived: interviews,
		SuccessRate:        SuccessRate(successful, total),
	}, nil
}

func (s *applicationService) countByStatus(ctx context.Context, userID int64, statuses []models.Status) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Application{}).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, st := range statuses {
			values[i] = string(st)
		}
		query = query.Where("status IN ?", values)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

// SuccessRate formats successful/total as a percentage with two decimals,
// returning "0.00" when there are no applications.
func SuccessRate(successful, total int64) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(successful)/float64(total)*100)
}
