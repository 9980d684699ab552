package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger/internal/logger"
	"github.com/feral-file/ff-ledger/internal/store"
	"github.com/feral-file/ff-ledger/internal/store/schema"
)

// MaintenanceService reads and toggles the global maintenance flag
//
//go:generate mockgen -source=maintenance.go -destination=../mocks/maintenance_service.go -package=mocks -mock_names=MaintenanceService=MockMaintenanceService
type MaintenanceService interface {
	Get(ctx context.Context) (*schema.ServiceContext, error)
	Update(ctx context.Context, maintenance bool) (*schema.ServiceContext, error)
}

type maintenanceService struct {
	store store.ServiceContextStore
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(st store.ServiceContextStore) MaintenanceService {
	return &maintenanceService{store: st}
}

func (s *maintenanceService) Get(ctx context.Context) (*schema.ServiceContext, error) {
	return s.store.GetServiceContext(ctx)
}

func (s *maintenanceService) Update(ctx context.Context, maintenance bool) (*schema.ServiceContext, error) {
	sc, err := s.store.SetMaintenance(ctx, maintenance)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Maintenance mode updated", zap.Bool("maintenance", sc.Maintenance))
	return sc, nil
}
