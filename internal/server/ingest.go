package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/tablelift/tablelift/constants"
	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/ingest"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	coord  *ingest.Coordinator
	logger *slog.Logger
}

func NewIngestionService(coord *ingest.Coordinator, logger *slog.Logger) *IngestionService {
	return &IngestionService{coord: coord, logger: logger}
}

func (s *IngestionService) BeginUpload(ctx context.Context, req *v1.BeginUploadRequest) (*v1.BeginUploadResponse, error) {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	targets, err := s.coord.BeginUpload(ctx, runID, req.GetFilenames())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out := make([]*v1.UploadTarget, 0, len(targets))
	for _, t := range targets {
		out = append(out, &v1.UploadTarget{File: toPBFile(t.File), UploadPath: t.Path})
	}
	return &v1.BeginUploadResponse{Targets: out}, nil
}

func (s *IngestionService) ConfirmUpload(ctx context.Context, req *v1.ConfirmUploadRequest) (*v1.ConfirmUploadResponse, error) {
	fileID, err := parseUUID("file_id", req.GetFileId())
	if err != nil {
		return nil, err
	}
	file, err := s.coord.ConfirmUpload(ctx, fileID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.ConfirmUploadResponse{File: toPBFile(file)}, nil
}

func (s *IngestionService) ImportFromSource(ctx context.Context, req *v1.ImportFromSourceRequest) (*v1.ImportFromSourceResponse, error) {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	origin := constants.FileOrigin(strings.ToUpper(strings.TrimSpace(req.GetOrigin())))
	switch origin {
	case constants.OriginExternalDrive, constants.OriginExternalMail:
	default:
		return nil, common.InvalidArgumentErrorf("origin %q is not an external source", req.GetOrigin())
	}

	op, err := s.coord.ImportFromSource(ctx, runID, origin, req.GetRefs())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.ImportFromSourceResponse{Operation: toPBOperation(op)}, nil
}

func (s *IngestionService) RemoveFile(ctx context.Context, req *v1.RemoveFileRequest) (*v1.RemoveFileResponse, error) {
	fileID, err := parseUUID("file_id", req.GetFileId())
	if err != nil {
		return nil, err
	}
	if err := s.coord.RemoveFile(ctx, fileID); err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.RemoveFileResponse{}, nil
}

func (s *IngestionService) ListFiles(ctx context.Context, req *v1.ListFilesRequest) (*v1.ListFilesResponse, error) {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	files, err := s.coord.ListFiles(ctx, runID, req.GetIncludeDeleted())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out := make([]*v1.SourceFile, 0, len(files))
	for _, f := range files {
		out = append(out, toPBFile(f))
	}
	return &v1.ListFilesResponse{Files: out}, nil
}
