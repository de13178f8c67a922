package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getready/ats-system/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// ErrDisabled marks a client constructed without an endpoint. Submissions
// proceed unscored.
var ErrDisabled = errors.New("scoring disabled")

// Client talks to the external resume scoring service over HTTP.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a scoring client. An empty url yields a client whose
// Score always fails with ErrDisabled.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

type scoreRequest struct {
	ResumeText     string   `json:"resume_text"`
	JobTitle       string   `json:"job_title"`
	RequiredSkills []string `json:"required_skills"`
}

type scoreResponse struct {
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords"`
}

func (c *Client) Score(ctx context.Context, req ports.ScoreRequest) (*ports.ScoreResult, error) {
	if c.url == "" {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(scoreRequest{
		ResumeText:     req.ResumeText,
		JobTitle:       req.JobTitle,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return nil, fmt.Errorf("encode score request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build score request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call scorer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scorer returned %d", resp.StatusCode)
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode score response: %w", err)
	}

	return &ports.ScoreResult{Score: out.Score, Keywords: out.Keywords}, nil
}
