package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/culina-app/backend/config"
	"github.com/culina-app/backend/internal/apperr"
	"github.com/culina-app/backend/internal/types"
)

// AIService wraps the Gemini generateContent endpoint. Every call requests
// JSON constrained by an explicit response schema, so the reply can be parsed
// deterministically instead of scraping free text.
type AIService struct {
	client *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

// NewAIService builds the gateway from the startup configuration. The
// credential was resolved once at load time; an empty key makes every call
// fail fast with apperr.ErrMissingAPIKey before touching the network.
func NewAIService(cfg *config.Config, logger *zap.Logger) *AIService {
	client := resty.New().SetBaseURL(cfg.GeminiAPIURL)
	return &AIService{
		client: client,
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		logger: logger,
	}
}

// responseSchema mirrors the subset of the Gemini schema descriptor we use.
type responseSchema struct {
	Type        string                     `json:"type"`
	Description string                     `json:"description,omitempty"`
	Enum        []string                   `json:"enum,omitempty"`
	Items       *responseSchema            `json:"items,omitempty"`
	Properties  map[string]*responseSchema `json:"properties,omitempty"`
	Required    []string                   `json:"required,omitempty"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   *responseSchema `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate sends one schema-constrained prompt and returns the raw JSON text
// of the first candidate.
func (s *AIService) generate(ctx context.Context, prompt string, schema *responseSchema) (string, error) {
	if s.apiKey == "" {
		return "", apperr.ErrMissingAPIKey
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	}

	var out generateResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", s.apiKey).
		SetBody(req).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.model))
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		s.logger.Warn("generation API error",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return "", fmt.Errorf("%w: status %d", apperr.ErrGeneration, resp.StatusCode())
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", apperr.ErrGeneration
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", apperr.ErrGeneration
	}
	return text, nil
}

// GenerateRecipe asks for a structured recipe for the described dish. The
// reply's ingredients and steps are text blocks, not lists; the caller splits
// them the same way manual form input is split.
func (s *AIService) GenerateRecipe(ctx context.Context, prompt string) (types.RecipeFormData, error) {
	var form types.RecipeFormData

	fullPrompt := fmt.Sprintf(
		"Generate a cooking recipe for: %s.\n"+
			"Determine the most appropriate category strictly from this list: %s.\n"+
			"Return a JSON object only.",
		prompt, strings.Join(types.CategoryNames(), ", "))

	schema := &responseSchema{
		Type: "OBJECT",
		Properties: map[string]*responseSchema{
			"name":        {Type: "STRING", Description: "Name of the dish"},
			"ingredients": {Type: "STRING", Description: "List of ingredients, each on a new line or comma separated"},
			"steps":       {Type: "STRING", Description: "Cooking instructions, step by step, separated by newlines"},
			"cookingTime": {Type: "NUMBER", Description: "Total cooking time in minutes"},
			"category":    {Type: "STRING", Enum: types.CategoryNames()},
		},
		Required: []string{"name", "ingredients", "steps", "cookingTime", "category"},
	}

	text, err := s.generate(ctx, fullPrompt, schema)
	if err != nil {
		return form, err
	}

	// The schema is declared remotely, not enforced locally, so validate the
	// parsed shape before handing it to anyone else.
	var raw struct {
		Name        string  `json:"name"`
		Ingredients string  `json:"ingredients"`
		Steps       string  `json:"steps"`
		CookingTime float64 `json:"cookingTime"`
		Category    string  `json:"category"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return form, fmt.Errorf("%w: %v", apperr.ErrGeneration, err)
	}
	if raw.Name == "" || raw.Ingredients == "" || raw.Steps == "" {
		return form, fmt.Errorf("%w: missing required fields", apperr.ErrGeneration)
	}
	if raw.CookingTime < 1 {
		raw.CookingTime = 1
	}
	if !types.IsValidCategory(raw.Category) {
		raw.Category = string(types.CategoryOther)
	}

	form = types.RecipeFormData{
		Name:        raw.Name,
		Ingredients: raw.Ingredients,
		Steps:       raw.Steps,
		CookingTime: int(raw.CookingTime),
		Category:    raw.Category,
	}
	return form, nil
}

// SuggestDishes asks for dish ideas from a free-text ingredient list. Three
// suggestions are requested; the model usually obliges but the count is not
// enforced.
func (s *AIService) SuggestDishes(ctx context.Context, ingredients string) ([]types.RecipeSuggestion, error) {
	prompt := fmt.Sprintf(
		"I have these ingredients: %s. Suggest 3 distinct recipes I can make.\n"+
			"Focus on rustic, home-cooked meals.\n"+
			"For each suggestion, list what ingredients from my list are used, and what key ingredients "+
			"might be missing (salt, pepper, oil, water are assumed to be available).\n"+
			"Return a JSON array.",
		ingredients)

	schema := &responseSchema{
		Type: "ARRAY",
		Items: &responseSchema{
			Type: "OBJECT",
			Properties: map[string]*responseSchema{
				"name":               {Type: "STRING", Description: "Name of the suggested dish"},
				"description":        {Type: "STRING", Description: "An appetizing one-sentence description"},
				"usedIngredients":    {Type: "ARRAY", Items: &responseSchema{Type: "STRING"}},
				"missingIngredients": {Type: "ARRAY", Items: &responseSchema{Type: "STRING"}},
			},
			Required: []string{"name", "description", "usedIngredients", "missingIngredients"},
		},
	}

	text, err := s.generate(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var suggestions []types.RecipeSuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrGeneration, err)
	}
	for _, sug := range suggestions {
		if sug.Name == "" {
			return nil, fmt.Errorf("%w: suggestion without a name", apperr.ErrGeneration)
		}
	}
	return suggestions, nil
}
