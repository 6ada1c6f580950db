package service

import (
	"context"
	"time"

	"github.com/amlakhub/amlak-api/internal/repository"
)

type AnalyticsService struct {
	repo *repository.RequestLogRepository
}

func NewAnalyticsService(repo *repository.RequestLogRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Holds the traffic summary shown on the admin dashboard
type TrafficSummary struct {
	TotalRequests    int64                    `json:"total_requests"`
	AvgResponseTime  float64                  `json:"avg_response_time_ms"`
	SuccessRate      float64                  `json:"success_rate"`
	ClientErrorRate  float64                  `json:"client_error_rate"`
	ServerErrorRate  float64                  `json:"server_error_rate"`
	RateLimitedCount int64                    `json:"rate_limited_count"`
	TopEndpoints     []map[string]interface{} `json:"top_endpoints"`
}

func (s *AnalyticsService) GetSummary(ctx context.Context, from, to time.Time) (*TrafficSummary, error) {
	total, err := s.repo.CountByTimeRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	avg, err := s.repo.GetAverageResponseTime(ctx, from, to)
	if err != nil {
		return nil, err
	}

	success, err := s.repo.CountByStatusCodeRange(ctx, 200, 299, from, to)
	if err != nil {
		return nil, err
	}

	clientErrors, err := s.repo.CountByStatusCodeRange(ctx, 400, 499, from, to)
	if err != nil {
		return nil, err
	}

	serverErrors, err := s.repo.CountByStatusCodeRange(ctx, 500, 599, from, to)
	if err != nil {
		return nil, err
	}

	rateLimited, err := s.repo.CountByStatusCodeRange(ctx, 429, 429, from, to)
	if err != nil {
		return nil, err
	}

	topEndpoints, err := s.repo.GetTopEndpoints(ctx, from, to, 10)
	if err != nil {
		return nil, err
	}

	summary := &TrafficSummary{
		TotalRequests:    total,
		AvgResponseTime:  avg,
		RateLimitedCount: rateLimited,
		TopEndpoints:     topEndpoints,
	}

	if total > 0 {
		summary.SuccessRate = float64(success) / float64(total) * 100
		summary.ClientErrorRate = float64(clientErrors) / float64(total) * 100
		summary.ServerErrorRate = float64(serverErrors) / float64(total) * 100
	}

	return summary, nil
}

// Removes request logs older than the retention period
func (s *AnalyticsService) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	return s.repo.DeleteOldLogs(ctx, time.Now().Add(-age))
}
