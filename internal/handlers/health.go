package handlers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

// HealthyStatus is the status text reported when the database answers.
const HealthyStatus = "All systems operational"

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status    string    `json:"status" example:"All systems operational" doc:"Overall service status"`
	Timestamp time.Time `json:"timestamp" doc:"Current UTC time"`
}

// HealthOutput wraps HealthResponse for huma.
type HealthOutput struct {
	Body HealthResponse
}

// Health handles GET /api/v1/health.
// It is used by container liveness probes and load balancers; unlike a bare
// "process is up" check it also proves the database pool can serve a query.
func (h *Handler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	status, err := checkSystemHealth(ctx, h.DB)
	if err != nil {
		return nil, Respond(apperr.Wrap(apperr.KindInternal, err, "health check failed"))
	}

	return &HealthOutput{Body: HealthResponse{
		Status:    status,
		Timestamp: h.now(),
	}}, nil
}

func checkSystemHealth(ctx context.Context, db *gorm.DB) (string, error) {
	if err := db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return "", apperr.Wrap(apperr.KindInfrastructure, err, "database connection failed")
	}
	return HealthyStatus, nil
}
