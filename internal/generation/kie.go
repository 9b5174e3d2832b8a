package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// KIEConfig configures the KIE task API client.
type KIEConfig struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
	MaxPolls     int
	HTTPClient   *http.Client
	// FetchResult downloads the result image into Image.Data.
	FetchResult bool
}

// KIE generates images through the KIE asynchronous task API: create a task,
// then poll its record until it succeeds or fails.
type KIE struct {
	cfg  KIEConfig
	base *url.URL
	log  *zap.Logger
}

// NewKIE validates cfg and returns a client.
func NewKIE(cfg KIEConfig, log *zap.Logger) (*KIE, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("kie api key is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("invalid kie base url %q", cfg.BaseURL)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 60
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &KIE{cfg: cfg, base: base, log: log}, nil
}

// Generate implements Generator.
func (c *KIE) Generate(ctx context.Context, req Request) (*Image, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	taskID, err := c.createTask(ctx, payloadFor(req))
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return c.poll(ctx, taskID)
}

func payloadFor(req Request) map[string]any {
	input := map[string]any{
		"prompt":       strings.TrimSpace(req.Prompt),
		"aspect_ratio": "1:1",
	}
	var model string
	switch req.Provider {
	case Flux2:
		model = "flux-2/pro-text-to-image"
		input["resolution"] = "1K"
	case NanoBanana:
		model = "google/nano-banana"
		input["output_format"] = "png"
	default:
		model = "nano-banana-pro"
		input["resolution"] = "1K"
		input["output_format"] = "png"
	}
	if req.RemoveBackground {
		input["background"] = "transparent"
	}
	return map[string]any{"model": model, "input": input}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func (c *KIE) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("kie status %d: %s", resp.StatusCode, truncate(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if env.Code != http.StatusOK {
		return nil, fmt.Errorf("kie code %d: %s", env.Code, env.Msg)
	}
	return env.Data, nil
}

func (c *KIE) createTask(ctx context.Context, payload map[string]any) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/v1/jobs/createTask", nil, payload)
	if err != nil {
		return "", err
	}
	var out struct {
		TaskID string `json:"taskId"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode task: %w", err)
	}
	if out.TaskID == "" {
		return "", fmt.Errorf("empty taskId")
	}
	c.log.Info("kie task created", zap.String("task_id", out.TaskID), zap.Any("model", payload["model"]))
	return out.TaskID, nil
}

func (c *KIE) poll(ctx context.Context, taskID string) (*Image, error) {
	q := url.Values{"taskId": {taskID}}
	for attempt := 0; attempt < c.cfg.MaxPolls; attempt++ {
		data, err := c.do(ctx, http.MethodGet, "/api/v1/jobs/recordInfo", q, nil)
		if err != nil {
			return nil, fmt.Errorf("task status: %w", err)
		}
		var rec struct {
			State      string `json:"state"`
			ResultJSON string `json:"resultJson"`
			FailCode   string `json:"failCode"`
			FailMsg    string `json:"failMsg"`
		}
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode status: %w", err)
		}

		switch rec.State {
		case "success":
			var result struct {
				ResultURLs []string `json:"resultUrls"`
			}
			if err := json.Unmarshal([]byte(rec.ResultJSON), &result); err != nil {
				return nil, fmt.Errorf("parse resultJson: %w", err)
			}
			if len(result.ResultURLs) == 0 {
				return nil, fmt.Errorf("no result urls")
			}
			c.log.Info("kie task completed", zap.String("task_id", taskID), zap.Int("attempt", attempt+1))
			img := &Image{URL: result.ResultURLs[0]}
			if c.cfg.FetchResult {
				if err := c.fetch(ctx, img); err != nil {
					return nil, fmt.Errorf("fetch result: %w", err)
				}
			}
			return img, nil
		case "fail":
			c.log.Warn("kie task failed", zap.String("task_id", taskID), zap.String("fail_code", rec.FailCode), zap.String("fail_msg", rec.FailMsg))
			return nil, fmt.Errorf("task failed: %s (code %s)", rec.FailMsg, rec.FailCode)
		case "waiting", "queuing", "queueing", "generating", "processing":
		default:
			return nil, fmt.Errorf("unknown task state %q", rec.State)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}
	return nil, fmt.Errorf("task %s not finished after %d polls", taskID, c.cfg.MaxPolls)
}

func (c *KIE) fetch(ctx context.Context, img *Image) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img.URL, nil)
	if err != nil {
		return err
	}
	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return err
	}
	img.Data = data
	img.ContentType = resp.Header.Get("Content-Type")
	return nil
}

const maxImageBytes = 20 << 20

func truncate(b []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(b))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
