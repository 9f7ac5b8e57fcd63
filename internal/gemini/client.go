// Package gemini is a minimal client for the generativelanguage REST API.
// Failures are classified into user-facing kinds so the caller can steer
// people toward the template path, which needs no key at all.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1"
	defaultModel   = "gemini-2.5-flash"

	temperature     = 0.7
	maxOutputTokens = 8192
)

// Client calls the generateContent endpoint of a single model.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithModel overrides the model name.
func WithModel(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

// WithAPIKey overrides the API key read from the environment.
func WithAPIKey(k string) Option {
	return func(c *Client) {
		if k != "" {
			c.apiKey = k
		}
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a Client from the GEMINI_API_KEY, GEMINI_MODEL and
// GEMINI_BASE_URL environment variables, then applies opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		model:      defaultModel,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
	if m := os.Getenv("GEMINI_MODEL"); m != "" {
		c.model = m
	}
	if b := os.Getenv("GEMINI_BASE_URL"); b != "" {
		c.baseURL = strings.TrimRight(b, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an API key is present. Without one, only
// the template generation path is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends one prompt and returns the model's text. Errors that
// originate in the API carry an *APIError with a classified kind and
// Japanese remediation text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", &APIError{Kind: ErrNoKey, Message: "APIキーが設定されていません"}
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("[GEMINI] request", "model", c.model, "prompt_chars", len(prompt))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		msg := fmt.Sprintf("HTTPエラー %d", resp.StatusCode)
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		slog.Warn("[GEMINI] API error", "status", resp.StatusCode, "message", msg)
		return "", Classify(msg)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("gemini: unmarshal response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	slog.Debug("[GEMINI] response", "chars", len(text))
	return text, nil
}

// ErrorKind buckets API failures by what the user should do about them.
type ErrorKind int

const (
	ErrOther ErrorKind = iota
	ErrQuota
	ErrInvalidKey
	ErrModelAccess
	ErrNoKey
)

// APIError is a classified API failure. Remedy() renders the guidance
// shown to the user; every kind points at the template path as the
// key-free alternative.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return "gemini: " + e.Message
}

// Classify buckets a raw API error message by substring, the way the
// API reports these conditions as of 2026.
func Classify(message string) *APIError {
	switch {
	case strings.Contains(message, "exceeded your current quota"),
		strings.Contains(message, "Quota exceeded"),
		strings.Contains(message, "rate limit"):
		return &APIError{Kind: ErrQuota, Message: message}
	case strings.Contains(message, "API_KEY_INVALID"),
		strings.Contains(message, "API key not valid"):
		return &APIError{Kind: ErrInvalidKey, Message: message}
	case strings.Contains(message, "model not found"),
		strings.Contains(message, "permission denied"):
		return &APIError{Kind: ErrModelAccess, Message: message}
	default:
		return &APIError{Kind: ErrOther, Message: message}
	}
}

// Remedy returns the user-facing guidance for the error.
func (e *APIError) Remedy() string {
	switch e.Kind {
	case ErrQuota:
		return `⚠️ Gemini API の無料枠制限に達しました。

【解決方法】
• しばらく待ってから再試行してください（1〜2分）
• テンプレート生成（API不要）を使えば、APIを使わずにケアプランを生成できます！

💡 API不要モードなら制限を気にせず使えます。`
	case ErrInvalidKey:
		return `⚠️ APIキーが無効です。

【解決方法】
• 設定でAPIキーを確認してください
• Google AI StudioでAPIキーを再発行してください
• テンプレート生成（API不要）なら、APIキーなしで使えます！`
	case ErrModelAccess:
		return `⚠️ AIモデルにアクセスできません。

【解決方法】
• テンプレート生成（API不要）をお試しください
• APIキーなしでテンプレートから生成できます！`
	case ErrNoKey:
		return `⚠️ APIキーが設定されていません。

【解決方法】
• GEMINI_API_KEY を設定してください
• テンプレート生成（API不要）なら、APIキーなしで使えます！`
	default:
		return fmt.Sprintf(`⚠️ AI生成でエラーが発生しました。

%s

【代替方法】
テンプレート生成（API不要）を使えば、APIを使わずにケアプランを生成できます！`, e.Message)
	}
}

// Remedy extracts user guidance from any error. Non-API errors get the
// generic remediation with the error text embedded.
func Remedy(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Remedy()
	}
	return (&APIError{Kind: ErrOther, Message: err.Error()}).Remedy()
}
