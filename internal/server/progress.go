package server

import (
	"context"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/progress"
)

type ProgressService struct {
	v1.UnimplementedProgressServiceServer
	broadcaster *progress.Broadcaster
	logger      *slog.Logger
}

func NewProgressService(b *progress.Broadcaster, logger *slog.Logger) *ProgressService {
	return &ProgressService{broadcaster: b, logger: logger}
}

func (s *ProgressService) PollProgress(_ context.Context, req *v1.PollProgressRequest) (*v1.ProgressSnapshot, error) {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	snap, ok := s.broadcaster.Poll(runID)
	if !ok {
		return nil, status.Error(codes.NotFound, "run is not tracked")
	}
	return toPBSnapshot(snap), nil
}

// SubscribeProgress streams aggregate snapshots until the run retires or the
// client goes away. A subscriber always receives the current snapshot first,
// so a poll and a subscription never disagree on the starting point.
func (s *ProgressService) SubscribeProgress(req *v1.SubscribeProgressRequest, stream v1.ProgressService_SubscribeProgressServer) error {
	runID, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return err
	}
	ch, cancel, ok := s.broadcaster.Subscribe(runID)
	if !ok {
		return status.Error(codes.NotFound, "run is not tracked")
	}
	defer cancel()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, open := <-ch:
			if !open {
				return nil
			}
			if err := stream.Send(toPBSnapshot(snap)); err != nil {
				return err
			}
		}
	}
}
