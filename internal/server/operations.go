package server

import (
	"context"

	"log/slog"

	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/ops"
)

type OperationService struct {
	v1.UnimplementedOperationServiceServer
	store  *ops.Store
	logger *slog.Logger
}

func NewOperationService(store *ops.Store, logger *slog.Logger) *OperationService {
	return &OperationService{store: store, logger: logger}
}

func (s *OperationService) GetOperation(ctx context.Context, req *v1.GetOperationRequest) (*v1.GetOperationResponse, error) {
	id, err := parseUUID("operation_id", req.GetOperationId())
	if err != nil {
		return nil, err
	}
	op, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetOperationResponse{Operation: toPBOperation(op)}, nil
}
