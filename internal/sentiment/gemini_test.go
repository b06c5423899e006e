package sentiment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func geminiReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestGeminiEstimate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/v1beta/models/gemini-1.5-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(geminiReply("8")))
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "test-key", "gemini-1.5-flash", time.Second)

	score, err := est.Estimate(context.Background(), "a fine movie")

	assert.NoError(t, err)
	assert.Equal(t, 8, score)
}

func TestGeminiEstimate_VerboseReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply("The score is 9 out of 10")))
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "k", "m", time.Second)

	score, err := est.Estimate(context.Background(), "loved it")

	assert.NoError(t, err)
	assert.Equal(t, 9, score)
}

func TestGeminiEstimate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "k", "m", time.Second)

	_, err := est.Estimate(context.Background(), "text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiEstimate_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":400,"message":"invalid key"}}`))
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "k", "m", time.Second)

	_, err := est.Estimate(context.Background(), "text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}

func TestGeminiEstimate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "k", "m", time.Second)

	_, err := est.Estimate(context.Background(), "text")

	assert.Error(t, err)
}

func TestGeminiEstimate_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(geminiReply("5")))
	}))
	defer srv.Close()

	est := NewGeminiEstimator(srv.URL, "k", "m", time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := est.Estimate(ctx, "text")

	assert.Error(t, err)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		reply    string
		expected int
		wantErr  bool
	}{
		{"7", 7, false},
		{" 10 \n", 10, false},
		{"Score: 3", 3, false},
		{"99", 10, false}, // clamped
		{"0", 1, false},   // clamped
		{"no digits here", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		score, err := parseScore(tt.reply)
		if tt.wantErr {
			assert.Error(t, err, "reply %q", tt.reply)
			continue
		}
		assert.NoError(t, err, "reply %q", tt.reply)
		assert.Equal(t, tt.expected, score, "reply %q", tt.reply)
	}
}
