package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"taskzen-go/internal/config"
)

// GeminiClient calls the hosted Gemini text-generation endpoint. A missing
// API key degrades every call to an error rather than failing startup.
type GeminiClient struct {
	cfg  *config.Config
	http *http.Client
}

func NewGeminiClient(cfg *config.Config) *GeminiClient {
	return &GeminiClient{cfg: cfg, http: &http.Client{}}
}

// Enabled reports whether an API key is configured.
func (c *GeminiClient) Enabled() bool {
	return c.cfg.GeminiKey != ""
}

// Generate sends the message verbatim and returns the model's reply text.
func (c *GeminiClient) Generate(ctx context.Context, message string) (string, error) {
	if c.cfg.GeminiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY missing")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{
				"role":  "user",
				"parts": []map[string]string{{"text": message}},
			},
		},
	}
	b, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.cfg.GeminiBaseURL, c.cfg.GeminiModel, c.cfg.GeminiKey)
	req, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.GeminiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		bs, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini error: %d - %s", resp.StatusCode, string(bs))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
