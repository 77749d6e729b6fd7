// Package extract holds the HTTP adapter for the external extraction
// collaborator. The engine treats extraction as a black box: it sends the
// task's files and field schema, and expects a JSON object conforming to
// that schema back.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/scheduler"
)

type HTTPExtractor struct {
	url     string
	headers map[string]string
	client  *http.Client
	logger  *slog.Logger
}

func NewHTTPExtractor(url string, headers map[string]string, timeout time.Duration, logger *slog.Logger) *HTTPExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &HTTPExtractor{
		url:     url,
		headers: headers,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type wireFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Folder   string `json:"folder,omitempty"`
}

type wireField struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Prompt string `json:"prompt,omitempty"`
}

type wireRequest struct {
	TaskID string         `json:"task_id"`
	Mode   string         `json:"mode"`
	Files  []wireFile     `json:"files"`
	Fields []wireField    `json:"fields"`
	Schema map[string]any `json:"schema"`
}

// Extract posts one task to the collaborator and returns the raw JSON
// payload. Schema validation stays with the caller; this adapter only
// guarantees the response body parses as a JSON object.
func (e *HTTPExtractor) Extract(ctx context.Context, req scheduler.ExtractRequest) (json.RawMessage, error) {
	body := wireRequest{
		TaskID: req.TaskID.String(),
		Mode:   string(req.Mode),
		Files:  make([]wireFile, 0, len(req.Files)),
		Fields: make([]wireField, 0, len(req.Fields)),
		Schema: req.Schema,
	}
	for _, f := range req.Files {
		body.Files = append(body.Files, wireFile{Filename: f.Filename, Path: f.SourcePath, Folder: req.Folder})
	}
	for _, f := range req.Fields {
		body.Fields = append(body.Fields, wireField{Name: f.Name, Type: f.Type, Prompt: f.Prompt})
	}

	raw, status, err := e.send(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, common.ErrTimeout
		}
		return nil, common.CollaboratorError("extractor", fmt.Errorf("status %d: %w", status, err))
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, common.CollaboratorError("extractor", fmt.Errorf("response is not a JSON object: %w", err))
	}
	return raw, nil
}

func (e *HTTPExtractor) send(ctx context.Context, body any) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}

	e.logger.Debug("extractor request", "req_id", reqID, "url", e.url, "bytes", len(bs))
	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error("extractor send failed", "req_id", reqID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	e.logger.Debug("extractor response", "req_id", reqID, "status", resp.StatusCode,
		"bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}

var _ scheduler.Extractor = (*HTTPExtractor)(nil)
