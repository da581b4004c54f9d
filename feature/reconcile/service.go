package reconcile

import (
	"context"
	"fmt"

	"playero-reconciler/core/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service validates reconciliation requests and delegates to the
// orchestrator.
type Service struct {
	orchestrator *Orchestrator
	logger       *zap.Logger
}

// NewService creates a new reconciliation service.
func NewService(db *gorm.DB, logger *zap.Logger, parallel bool) *Service {
	return &Service{
		orchestrator: NewOrchestrator(db, logger, parallel),
		logger:       logger,
	}
}

// DailyReport reconciles every warehouse of the branch for the given
// ordinal date (YYYYMMDD).
func (s *Service) DailyReport(ctx context.Context, branchID, date int) ([]Result, error) {
	if branchID <= 0 {
		return nil, fmt.Errorf("invalid branch id %d", branchID)
	}
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %d, expected YYYYMMDD", date)
	}
	return s.orchestrator.ReconcileBranch(ctx, branchID, date)
}
