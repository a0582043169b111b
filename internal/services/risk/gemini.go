package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Model() string {
	return g.model
}

func (g *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
}

// GenerateJSON requests a JSON answer conforming to schema. The context
// deadline becomes the request timeout.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema map[string]interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	agent := fiber.Post(g.endpoint())
	agent.Set("x-goog-api-key", g.apiKey)
	agent.JSON(generateRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: fiber.MIMEApplicationJSON,
			ResponseSchema:   schema,
		},
	})
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	}
	if err := agent.Parse(); err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("gemini request failed: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
	}

	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
