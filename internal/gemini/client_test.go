package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerate_Success(t *testing.T) {
	// A normal candidate response yields its first part's text, and the
	// request carries the fixed generation config.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key = %s", r.URL.Query().Get("key"))
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.GenerationConfig.Temperature != 0.7 || req.GenerationConfig.MaxOutputTokens != 8192 {
			t.Errorf("generationConfig = %+v", req.GenerationConfig)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"回答"}]}}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("test-key"))
	got, err := c.Generate(context.Background(), "プロンプト")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "回答" {
		t.Errorf("got %q", got)
	}
}

func TestGenerate_NoKey(t *testing.T) {
	// Without a key the client fails fast with ErrNoKey, no HTTP call.
	t.Setenv("GEMINI_API_KEY", "")
	c := New(WithBaseURL("http://127.0.0.1:0"))
	_, err := c.Generate(context.Background(), "p")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrNoKey {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerate_QuotaError(t *testing.T) {
	// A 429 with a quota message classifies as ErrQuota.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"You exceeded your current quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	_, err := c.Generate(context.Background(), "p")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != ErrQuota {
		t.Fatalf("err = %v", err)
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	// A 200 with no candidates is an error, not empty text.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatal("want error for empty candidates")
	}
}

func TestClassify_Kinds(t *testing.T) {
	// Raw messages bucket into the four kinds by substring.
	cases := []struct {
		msg  string
		want ErrorKind
	}{
		{"You exceeded your current quota, please check", ErrQuota},
		{"Quota exceeded for metric", ErrQuota},
		{"rate limit reached", ErrQuota},
		{"API_KEY_INVALID", ErrInvalidKey},
		{"API key not valid. Please pass a valid API key.", ErrInvalidKey},
		{"model not found: gemini-ancient", ErrModelAccess},
		{"permission denied for model", ErrModelAccess},
		{"something else entirely", ErrOther},
	}
	for _, tc := range cases {
		if got := Classify(tc.msg).Kind; got != tc.want {
			t.Errorf("Classify(%q).Kind = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestRemedy_AlwaysMentionsTemplatePath(t *testing.T) {
	// Every remediation text points the user at the key-free template
	// generation path.
	kinds := []ErrorKind{ErrQuota, ErrInvalidKey, ErrModelAccess, ErrNoKey, ErrOther}
	for _, k := range kinds {
		text := (&APIError{Kind: k, Message: "m"}).Remedy()
		if !strings.Contains(text, "テンプレート生成") {
			t.Errorf("kind %v remedy does not mention template path:\n%s", k, text)
		}
	}
}

func TestRemedy_WrappedError(t *testing.T) {
	// Remedy unwraps APIError even through fmt wrapping, and falls back
	// to the generic text for plain errors.
	wrapped := errors.New("plain failure")
	if !strings.Contains(Remedy(wrapped), "plain failure") {
		t.Error("plain error text should be embedded")
	}
	api := Classify("rate limit")
	if !strings.Contains(Remedy(api), "無料枠制限") {
		t.Error("quota remedy expected")
	}
}
