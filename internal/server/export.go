package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/tablelift/tablelift/constants"
	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/export"
	"github.com/tablelift/tablelift/internal/ops"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	coord   *export.Coordinator
	opStore *ops.Store
	logger  *slog.Logger
}

func NewExportService(coord *export.Coordinator, opStore *ops.Store, logger *slog.Logger) *ExportService {
	return &ExportService{coord: coord, opStore: opStore, logger: logger}
}

func (s *ExportService) RequestExport(ctx context.Context, req *v1.RequestExportRequest) (*v1.RequestExportResponse, error) {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	kind := constants.ExportFileKind(strings.ToUpper(strings.TrimSpace(req.GetFileKind())))
	switch kind {
	case constants.ExportCSV, constants.ExportXLSX:
	default:
		return nil, common.InvalidArgumentErrorf("unknown file kind %q", req.GetFileKind())
	}
	dest := constants.ExportDestination(strings.ToUpper(strings.TrimSpace(req.GetDestination())))
	if dest == "" {
		dest = constants.DestinationDownload
	}
	switch dest {
	case constants.DestinationDownload, constants.DestinationExternalDrive, constants.DestinationExternalMail:
	default:
		return nil, common.InvalidArgumentErrorf("unknown destination %q", req.GetDestination())
	}

	ex, err := s.coord.RequestExport(ctx, runID, kind, dest)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	op, err := s.opStore.Get(ctx, ex.OperationID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.RequestExportResponse{Export: toPBExport(ex), Operation: toPBOperation(op)}, nil
}

func (s *ExportService) GetExport(ctx context.Context, req *v1.GetExportRequest) (*v1.GetExportResponse, error) {
	id, err := parseUUID("export_id", req.GetExportId())
	if err != nil {
		return nil, err
	}
	ex, err := s.coord.GetExport(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetExportResponse{Export: toPBExport(ex)}, nil
}

func (s *ExportService) GetExportDownloadTarget(ctx context.Context, req *v1.GetExportDownloadTargetRequest) (*v1.GetExportDownloadTargetResponse, error) {
	id, err := parseUUID("export_id", req.GetExportId())
	if err != nil {
		return nil, err
	}
	path, err := s.coord.GetDownloadTarget(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetExportDownloadTargetResponse{Path: path}, nil
}
