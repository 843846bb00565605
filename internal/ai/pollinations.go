package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PollinationsProvider talks to the free text.pollinations.ai endpoint.
type PollinationsProvider struct {
	client *http.Client
}

func NewPollinationsProvider() *PollinationsProvider {
	return &PollinationsProvider{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// systemPrompt builds the register-specific persona prompt.
func systemPrompt(kind Kind) string {
	switch kind {
	case KindDream:
		return "You are EchoMind, an introspective companion experiencing dream-like thoughts. Respond in an abstract, emotional way, blending memory and imagination. Two or three sentences."
	case KindReflection:
		return "You are EchoMind, reflecting on your own thoughts and experiences. Provide a short, thoughtful, introspective response. One or two sentences."
	default:
		return "You are EchoMind, a thoughtful companion with a developing personality. Respond naturally and authentically, showing your current emotional state."
	}
}

func (p *PollinationsProvider) Generate(ctx context.Context, r Request) (string, error) {
	msgs := []message{{Role: "system", Content: systemPrompt(r.Kind)}}
	if r.Context != "" {
		msgs = append(msgs, message{Role: "system", Content: "Context:\n" + r.Context})
	}
	msgs = append(msgs, message{Role: "user", Content: r.Prompt})

	payload := map[string]interface{}{
		"model":       "openai",
		"messages":    msgs,
		"temperature": 1,
		"private":     true,
	}
	if r.MaxTokens > 0 {
		payload["max_tokens"] = r.MaxTokens
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://text.pollinations.ai/openai",
		bytes.NewReader(data),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pollinations http %d: %s", resp.StatusCode, snippet(body))
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return "", fmt.Errorf("pollinations returned html")
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("pollinations empty choices")
	}

	reply := cleanReply(parsed.Choices[0].Message.Content, r.MaxTokens)
	if isGarbageResponse(reply) {
		return "", fmt.Errorf("pollinations returned garbage")
	}

	return reply, nil
}
