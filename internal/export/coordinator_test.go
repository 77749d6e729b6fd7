package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"log/slog"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/async"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
	"github.com/tablelift/tablelift/internal/ops"
	"github.com/tablelift/tablelift/internal/repository/memory"
)

type inlineQueue struct{}

func (inlineQueue) Enqueue(ctx context.Context, job async.Job) error { return job.Run(ctx) }
func (inlineQueue) Shutdown(context.Context)                         {}

type stubDeliverer struct {
	ref   string
	err   error
	calls int
}

func (d *stubDeliverer) Deliver(_ context.Context, _ *entity.Export, _ string) (string, error) {
	d.calls++
	return d.ref, d.err
}

type fixture struct {
	coord   *Coordinator
	runs    *memory.Runs
	tasks   *memory.Tasks
	opStore *ops.Store
	dir     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	runs := memory.NewRuns()
	tasks := memory.NewTasks()
	opStore := ops.NewStore(memory.NewOperations(), logger)
	dir := t.TempDir()
	coord := NewCoordinator(runs, tasks, memory.NewExports(), opStore, inlineQueue{}, dir, logger)
	return &fixture{coord: coord, runs: runs, tasks: tasks, opStore: opStore, dir: dir}
}

func sampleFields() []entity.FieldSpec {
	return []entity.FieldSpec{
		{Name: "vendor", Type: "STRING"},
		{Name: "total", Type: "CURRENCY"},
	}
}

func (f *fixture) seedRunWithResults(t *testing.T, n int) *entity.JobRun {
	t.Helper()
	ctx := context.Background()
	run, err := f.runs.Create(ctx, &entity.JobRun{
		JobID:      uuid.New(),
		Status:     constants.RunStatusCompleted,
		ConfigStep: constants.ConfigStepSubmitted,
		Fields:     sampleFields(),
	})
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
	var batch []*entity.ExtractionTask
	for i := 0; i < n; i++ {
		batch = append(batch, &entity.ExtractionTask{
			RunID:  run.ID,
			Folder: "invoices",
			Mode:   constants.ModeIndividual,
			Status: constants.TaskStatusCompleted,
			Result: json.RawMessage(`{"vendor":"acme","total":"12.50"}`),
		})
	}
	if n > 0 {
		if _, err := f.tasks.CreateBatch(ctx, batch); err != nil {
			t.Fatalf("seed tasks: %v", err)
		}
	}
	return run
}

func TestBuildArtifactCSV(t *testing.T) {
	tasks := []*entity.ExtractionTask{
		{Folder: "a", Result: json.RawMessage(`{"vendor":"acme","total":"12.50"}`)},
		{Folder: "b", Result: json.RawMessage(`{"vendor":"globex","total":"7"}`)},
	}
	raw, err := BuildArtifact(constants.ExportCSV, sampleFields(), tasks)
	if err != nil {
		t.Fatalf("BuildArtifact: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(records))
	}
	wantHeader := []string{"vendor", "total", "source_folder"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Fatalf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "acme" || records[1][2] != "a" {
		t.Fatalf("row 1 = %v", records[1])
	}
}

func TestBuildArtifactXLSX(t *testing.T) {
	tasks := []*entity.ExtractionTask{
		{Folder: "a", Result: json.RawMessage(`{"vendor":"acme","total":"12.50"}`)},
	}
	raw, err := BuildArtifact(constants.ExportXLSX, sampleFields(), tasks)
	if err != nil {
		t.Fatalf("BuildArtifact: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "acme" {
		t.Fatalf("vendor cell = %q, want acme", rows[1][0])
	}
}

func TestBuildArtifactMixedValueTypes(t *testing.T) {
	fields := []entity.FieldSpec{
		{Name: "count", Type: "NUMBER"},
		{Name: "paid", Type: "BOOLEAN"},
	}
	tasks := []*entity.ExtractionTask{
		{Folder: "", Result: json.RawMessage(`{"count":3,"paid":true}`)},
	}
	raw, err := BuildArtifact(constants.ExportCSV, fields, tasks)
	if err != nil {
		t.Fatalf("BuildArtifact: %v", err)
	}
	if !strings.Contains(string(raw), "3,true") {
		t.Fatalf("artifact = %q, want numeric and boolean cells rendered", raw)
	}
}

func TestRequestExportDownload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRunWithResults(t, 2)

	ex, err := f.coord.RequestExport(ctx, run.ID, constants.ExportCSV, constants.DestinationDownload)
	if err != nil {
		t.Fatalf("RequestExport: %v", err)
	}

	got, err := f.coord.GetExport(ctx, ex.ID)
	if err != nil {
		t.Fatalf("GetExport: %v", err)
	}
	if got.State != constants.OperationDone {
		t.Fatalf("export state = %s (%s), want DONE", got.State, got.ErrorMessage)
	}
	path, err := f.coord.GetDownloadTarget(ctx, ex.ID)
	if err != nil {
		t.Fatalf("GetDownloadTarget: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("parse artifact: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("artifact rows = %d, want 3", len(records))
	}

	op, _ := f.opStore.Get(ctx, got.OperationID)
	if op.State != constants.OperationDone {
		t.Fatalf("operation state = %s, want DONE", op.State)
	}
}

func TestRequestExportZeroResults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRunWithResults(t, 0)

	ex, err := f.coord.RequestExport(ctx, run.ID, constants.ExportXLSX, constants.DestinationDownload)
	if err != nil {
		t.Fatalf("RequestExport: %v", err)
	}
	if ex.State != constants.OperationError {
		t.Fatalf("export state = %s, want ERROR", ex.State)
	}
	if !strings.HasPrefix(ex.ErrorMessage, ReasonNoResults) {
		t.Fatalf("error = %q, want %s reason", ex.ErrorMessage, ReasonNoResults)
	}
	op, _ := f.opStore.Get(ctx, ex.OperationID)
	if op.State != constants.OperationError {
		t.Fatalf("operation state = %s, want ERROR", op.State)
	}
}

func TestRequestExportExternalDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRunWithResults(t, 1)
	deliverer := &stubDeliverer{ref: "drive://folder/results.xlsx"}
	f.coord.RegisterDeliverer(constants.DestinationExternalDrive, deliverer)

	ex, err := f.coord.RequestExport(ctx, run.ID, constants.ExportXLSX, constants.DestinationExternalDrive)
	if err != nil {
		t.Fatalf("RequestExport: %v", err)
	}
	got, _ := f.coord.GetExport(ctx, ex.ID)
	if got.State != constants.OperationDone {
		t.Fatalf("export state = %s (%s), want DONE", got.State, got.ErrorMessage)
	}
	if got.ExternalRef != deliverer.ref {
		t.Fatalf("external ref = %q, want %q", got.ExternalRef, deliverer.ref)
	}
	if deliverer.calls != 1 {
		t.Fatalf("deliver calls = %d, want 1", deliverer.calls)
	}

	// external exports are not directly downloadable
	if _, err := f.coord.GetDownloadTarget(ctx, ex.ID); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("GetDownloadTarget error = %v, want ErrValidation", err)
	}
}

func TestDeliveryFailureKeepsArtifact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	run := f.seedRunWithResults(t, 1)
	f.coord.RegisterDeliverer(constants.DestinationExternalMail, &stubDeliverer{err: errors.New("smtp refused")})

	ex, err := f.coord.RequestExport(ctx, run.ID, constants.ExportCSV, constants.DestinationExternalMail)
	if err != nil {
		t.Fatalf("RequestExport: %v", err)
	}
	got, _ := f.coord.GetExport(ctx, ex.ID)
	if got.State != constants.OperationError {
		t.Fatalf("export state = %s, want ERROR", got.State)
	}
	if !strings.HasPrefix(got.ErrorMessage, ReasonDeliveryFailed) {
		t.Fatalf("error = %q, want %s reason", got.ErrorMessage, ReasonDeliveryFailed)
	}
	if got.ArtifactPath == "" {
		t.Fatal("artifact path dropped on delivery failure")
	}
	if _, err := os.Stat(got.ArtifactPath); err != nil {
		t.Fatalf("artifact missing after delivery failure: %v", err)
	}
}

func TestRequestExportRequiresDeliverer(t *testing.T) {
	f := newFixture(t)
	run := f.seedRunWithResults(t, 1)
	_, err := f.coord.RequestExport(context.Background(), run.ID, constants.ExportCSV, constants.DestinationExternalDrive)
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
