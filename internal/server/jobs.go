package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/constants"
	v1 "github.com/tablelift/tablelift/gen/proto/tablelift/v1"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/runs"
)

type JobService struct {
	v1.UnimplementedJobServiceServer
	runs   *runs.Service
	logger *slog.Logger
}

func NewJobService(svc *runs.Service, logger *slog.Logger) *JobService {
	return &JobService{runs: svc, logger: logger}
}

func (s *JobService) CreateJob(ctx context.Context, req *v1.CreateJobRequest) (*v1.CreateJobResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	var templateID *uuid.UUID
	if tid := strings.TrimSpace(req.GetTemplateId()); tid != "" {
		id, err := parseUUID("template_id", tid)
		if err != nil {
			return nil, err
		}
		templateID = &id
	}

	job, run, err := s.runs.CreateJob(ctx, name, templateID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.CreateJobResponse{Job: toPBJob(job), Run: toPBRun(run)}, nil
}

func (s *JobService) GetJob(ctx context.Context, req *v1.GetJobRequest) (*v1.GetJobResponse, error) {
	id, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.runs.GetJob(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *JobService) ListJobs(ctx context.Context, _ *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	jobs, err := s.runs.ListJobs(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out := make([]*v1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toPBJob(j))
	}
	return &v1.ListJobsResponse{Jobs: out}, nil
}

func (s *JobService) DeleteJob(ctx context.Context, req *v1.DeleteJobRequest) (*v1.DeleteJobResponse, error) {
	id, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	if err := s.runs.DeleteJob(ctx, id); err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.DeleteJobResponse{}, nil
}

func (s *JobService) CreateRun(ctx context.Context, req *v1.CreateRunRequest) (*v1.CreateRunResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	opts := runs.CreateRunOptions{
		AppendResults: req.GetAppendResults(),
		Supersede:     req.GetSupersede(),
	}
	if src := strings.TrimSpace(req.GetCloneFromRunId()); src != "" {
		id, err := parseUUID("clone_from_run_id", src)
		if err != nil {
			return nil, err
		}
		opts.CloneFromRunID = &id
	}

	run, err := s.runs.CreateRun(ctx, jobID, opts)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.CreateRunResponse{Run: toPBRun(run)}, nil
}

func (s *JobService) GetRun(ctx context.Context, req *v1.GetRunRequest) (*v1.GetRunResponse, error) {
	id, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	run, err := s.runs.GetRun(ctx, id)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetRunResponse{Run: toPBRun(run)}, nil
}

func (s *JobService) ListRuns(ctx context.Context, req *v1.ListRunsRequest) (*v1.ListRunsResponse, error) {
	jobID, err := parseUUID("job_id", req.GetJobId())
	if err != nil {
		return nil, err
	}
	jobRuns, err := s.runs.ListRuns(ctx, jobID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out := make([]*v1.JobRun, 0, len(jobRuns))
	for _, r := range jobRuns {
		out = append(out, toPBRun(r))
	}
	return &v1.ListRunsResponse{Runs: out}, nil
}

func (s *JobService) AdvanceConfigStep(ctx context.Context, req *v1.AdvanceConfigStepRequest) (*v1.GetRunResponse, error) {
	id, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	target := constants.ConfigStep(strings.ToUpper(strings.TrimSpace(req.GetTargetStep())))
	run, err := s.runs.AdvanceConfigStep(ctx, id, target, req.GetExpectedVersion())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetRunResponse{Run: toPBRun(run)}, nil
}

func (s *JobService) ConfigureFields(ctx context.Context, req *v1.ConfigureFieldsRequest) (*v1.GetRunResponse, error) {
	id, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	run, err := s.runs.ConfigureFields(ctx, id, req.GetExpectedVersion(),
		fromPBFields(req.GetFields()), fromPBTaskDefs(req.GetTaskDefs()))
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetRunResponse{Run: toPBRun(run)}, nil
}

func (s *JobService) SubmitRun(ctx context.Context, req *v1.SubmitRunRequest) (*v1.GetRunResponse, error) {
	id, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Submit(ctx, id, req.GetExpectedVersion())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetRunResponse{Run: toPBRun(run)}, nil
}

func (s *JobService) CancelRun(ctx context.Context, req *v1.CancelRunRequest) (*v1.GetRunResponse, error) {
	id, err := parseUUID("run_id", req.GetRunId())
	if err != nil {
		return nil, err
	}
	run, err := s.runs.Cancel(ctx, id, req.GetExpectedVersion())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &v1.GetRunResponse{Run: toPBRun(run)}, nil
}
