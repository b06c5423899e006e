package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"
)

const geminiPromptTemplate = `
Analyze the sentiment of the following movie review and provide ONLY a numerical score from 1 to 10.

Rules:
- 1-2: Very Negative (hateful, extremely disappointed)
- 3-4: Negative (didn't like it, poor quality)
- 5-6: Neutral (mixed feelings, okay)
- 7-8: Positive (liked it, good quality)
- 9-10: Very Positive (loved it, masterpiece)

Review: "%s"

Respond with ONLY the number (1-10), nothing else.
`

var firstIntegerRe = regexp.MustCompile(`\d+`)

// GeminiEstimator scores text by asking a hosted generative model for a
// single number under a fixed rubric. The HTTP client carries a bounded
// timeout and there is no retry: any failure is reported to the caller,
// which falls back immediately.
type GeminiEstimator struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGeminiEstimator(apiURL, apiKey, model string, timeout time.Duration) *GeminiEstimator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GeminiEstimator{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GeminiEstimator) Estimate(ctx context.Context, text string) (int, error) {
	prompt := fmt.Sprintf(geminiPromptTemplate, text)

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.apiURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call generative model: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("generative model returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error != nil {
		return 0, fmt.Errorf("generative model error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return 0, fmt.Errorf("empty model response")
	}

	return parseScore(parsed.Candidates[0].Content.Parts[0].Text)
}

// parseScore extracts the first integer in the model reply and clamps
// it to [1,10]. A reply with no digits is a failure.
func parseScore(reply string) (int, error) {
	match := firstIntegerRe.FindString(reply)
	if match == "" {
		return 0, fmt.Errorf("no score found in model reply %q", reply)
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", match, err)
	}
	return Clamp(n), nil
}
