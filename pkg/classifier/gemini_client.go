package classifier

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/utils"

	"github.com/go-resty/resty/v2"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func LoadGeminiConfig() GeminiConfig {
	seconds, err := strconv.Atoi(utils.GetConfig("GEMINI_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 30
	}
	return GeminiConfig{
		APIKey:  utils.GetConfig("GEMINI_API_KEY"),
		Model:   utils.GetConfig("GEMINI_MODEL"),
		BaseURL: utils.GetConfig("GEMINI_BASE_URL"),
		Timeout: time.Duration(seconds) * time.Second,
	}
}

// GeminiClient sends a single text prompt and returns the first candidate.
type GeminiClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type (
	geminiClient struct {
		client *resty.Client
		config GeminiConfig
	}

	geminiPart struct {
		Text string `json:"text"`
	}

	geminiContent struct {
		Parts []geminiPart `json:"parts"`
	}

	generateRequest struct {
		Contents         []geminiContent  `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}

	generationConfig struct {
		Temperature      float64 `json:"temperature"`
		ResponseMimeType string  `json:"responseMimeType"`
	}

	generateResponse struct {
		Candidates []struct {
			Content geminiContent `json:"content"`
		} `json:"candidates"`
	}
)

func NewGeminiClient(config GeminiConfig) GeminiClient {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(config.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(config.Timeout)

	return &geminiClient{client: c, config: config}
}

// Generate makes exactly one attempt; callers decide what a failure means.
func (g *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.config.APIKey == "" {
		return "", domain.ErrGeminiNotConfigured
	}

	body := generateRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      0.2,
			ResponseMimeType: "application/json",
		},
	}

	var result generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.config.APIKey).
		SetPathParam("model", g.config.Model).
		SetBody(&body).
		SetResult(&result).
		Post("/models/{model}:generateContent")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGeminiAPIFailed, resp.Status(), resp.String())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrGeminiAPIFailed)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
