package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"product-backend/internal/config"

	"github.com/sirupsen/logrus"
)

// TranslationField selects the prompt phrasing: product names get a bare
// word-for-word translation, descriptions a neutral professional tone.
type TranslationField string

const (
	FieldName        TranslationField = "name"
	FieldDescription TranslationField = "description"
)

type TranslationService interface {
	TranslateText(ctx context.Context, text, sourceLang, targetLang string, field TranslationField) (string, error)
}

type geminiTranslationService struct {
	apiKey     string
	baseURL    string
	model      string
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewTranslationService(cfg config.GeminiConfig, logger *logrus.Logger) (TranslationService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not defined")
	}

	return &geminiTranslationService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}, nil
}

func (s *geminiTranslationService) TranslateText(ctx context.Context, text, sourceLang, targetLang string, field TranslationField) (string, error) {
	prompt := buildPrompt(text, sourceLang, targetLang, field)

	translated, err := s.generateContent(ctx, prompt)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"source_lang": sourceLang,
			"target_lang": targetLang,
			"field":       field,
		}).Error("Translation request failed")
		return "", fmt.Errorf("failed to translate text: %w", err)
	}

	return translated, nil
}

func buildPrompt(text, sourceLang, targetLang string, field TranslationField) string {
	if field == FieldName {
		return fmt.Sprintf("Show only the %s translation of the word \"%s\"",
			languageDisplayName(targetLang), text)
	}

	return fmt.Sprintf("Translate the following product description from %s to %s in a neutral and professional tone:\n\n\"%s\"",
		sourceLang, targetLang, text)
}

// languageDisplayName maps the two codes the prompt knows by name; anything
// else passes through as its raw code.
func languageDisplayName(code string) string {
	switch code {
	case "en":
		return "english"
	case "ch":
		return "chinese"
	default:
		return code
	}
}

func (s *geminiTranslationService) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{
				Role:  "user",
				Parts: []part{{Text: prompt}},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call generative language API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("generative language API error: %s", errResp.Error.Message)
		}
		return "", fmt.Errorf("generative language API error: %s", resp.Status)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from generative language API")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
