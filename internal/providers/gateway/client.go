// Package gateway implements the client for the hosted multimodal image
// model. The upstream speaks an OpenAI-compatible chat-completions dialect:
// the prompt and the source product photo travel as content parts of a
// single user message, and the generated image comes back as an image URL
// attached to the first choice.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Sentinel outcomes the orchestrator must distinguish. Anything else is a
// generic provider failure.
var (
	ErrRateLimited     = errors.New("gateway: rate limited")
	ErrPaymentRequired = errors.New("gateway: payment required")
	ErrEmptyImage      = errors.New("gateway: response contained no image")
)

type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	token      string
}

func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://ai.gateway.lovable.dev/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "google/gemini-2.5-flash-image-preview"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: client,
		baseURL:    base,
		model:      model,
		token:      strings.TrimSpace(opts.APIKey),
	}
}

// Model returns the configured upstream model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateRequest carries everything needed for a single edit call.
type GenerateRequest struct {
	Prompt   string
	ImageURL string
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []chatMessage `json:"messages"`
	Modalities []string      `json:"modalities"`
}

type chatMessage struct {
	Role    string     `json:"role"`
	Content []chatPart `json:"content"`
}

type chatPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Images []struct {
				ImageURL chatImageURL `json:"image_url"`
			} `json:"images"`
		} `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// GenerateImage sends the prompt and the source image to the model and
// returns the URL of the generated composite. A 2xx response without an
// image URL is a failure: the caller has nothing to show the user.
func (c *Client) GenerateImage(ctx context.Context, req GenerateRequest) (string, error) {
	if c == nil {
		return "", errors.New("gateway client not configured")
	}
	if c.token == "" {
		return "", errors.New("gateway: API key is missing")
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return "", errors.New("gateway: prompt required")
	}
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		return "", errors.New("gateway: source image url required")
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []chatPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &chatImageURL{URL: imageURL}},
			},
		}},
		Modalities: []string{"image", "text"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", fmt.Errorf("gateway: http %d", resp.StatusCode)
		}
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		if out.Error.Message != "" {
			return "", fmt.Errorf("gateway error: %s (%s)", out.Error.Message, out.Error.Code)
		}
		return "", fmt.Errorf("gateway: http %d", resp.StatusCode)
	}

	if len(out.Choices) == 0 || len(out.Choices[0].Message.Images) == 0 {
		return "", ErrEmptyImage
	}
	url := strings.TrimSpace(out.Choices[0].Message.Images[0].ImageURL.URL)
	if url == "" {
		return "", ErrEmptyImage
	}
	return url, nil
}
