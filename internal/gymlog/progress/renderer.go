package progress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/gymprogress/internal/telemetry/tracing"
)

// Renderer turns a ChartSpec into opaque image bytes. Rendering lives in an
// external collaborator; this core only describes the chart.
type Renderer interface {
	Render(ctx context.Context, spec *ChartSpec) ([]byte, error)
}

// HTTPRenderer posts chart specs to a chart-renderer service and returns
// the PNG bytes it answers with.
type HTTPRenderer struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPRenderer(endpoint string, httpClient *http.Client) *HTTPRenderer {
	return &HTTPRenderer{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (r *HTTPRenderer) Render(ctx context.Context, spec *ChartSpec) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "renderer.gymlog.render")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	specJson, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal chart spec: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(specJson))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renderer responded with %d", resp.StatusCode)
	}

	imageBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read rendered image: %w", err)
	}
	return imageBytes, nil
}
