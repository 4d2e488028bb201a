package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// KolosalClient talks to an OpenAI-compatible chat-completions endpoint.
type KolosalClient struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewKolosalClient(apiKey, baseURL, model string) *KolosalClient {
	return &KolosalClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

func (k *KolosalClient) Complete(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float64,
) (string, error) {
	return k.send(ctx, []chatMessage{
		{Role: "user", Content: prompt},
	}, maxTokens, temperature)
}

func (k *KolosalClient) CompleteVision(
	ctx context.Context,
	prompt string,
	image []byte,
	maxTokens int,
	temperature float64,
) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(image)

	parts := []contentPart{
		{Type: "text", Text: prompt},
		{
			Type: "image_url",
			ImageURL: &imageURL{
				URL: "data:image/jpeg;base64," + encoded,
			},
		},
	}

	return k.send(ctx, []chatMessage{
		{Role: "user", Content: parts},
	}, maxTokens, temperature)
}

func (k *KolosalClient) Chat(
	ctx context.Context,
	system string,
	user string,
	maxTokens int,
) (string, error) {
	return k.send(ctx, []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, maxTokens, 1.0)
}

func (k *KolosalClient) send(
	ctx context.Context,
	messages []chatMessage,
	maxTokens int,
	temperature float64,
) (string, error) {
	if k.apiKey == "" {
		return "", fmt.Errorf("%w: missing KOLOSAL_API_KEY", ErrUnavailable)
	}
	if k.baseURL == "" {
		return "", fmt.Errorf("%w: missing KOLOSAL_BASE_URL", ErrUnavailable)
	}

	payload := map[string]any{
		"model":       k.model,
		"messages":    messages,
		"max_tokens":  maxTokens,
		"temperature": temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		k.baseURL+"/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+k.apiKey)

	resp, err := k.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrUnavailable)
	}

	content := result.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("empty completion content")
	}

	return content, nil
}
