package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/logger"
	"github.com/vegichef/backend/internal/types"
)

const (
	// FallbackConnect is returned when the chat-completion call fails.
	FallbackConnect = "Sorry, I couldn't connect to get cooking instructions right now. Please try again later."
	// FallbackMalformed is returned when the reply is not the expected JSON.
	FallbackMalformed = "Sorry, I couldn't get proper cooking instructions right now. Please try again."

	guidanceCachePrefix = "guidance:"

	systemPrompt = "You are an expert Indian home cook and a loving mother who explains recipes " +
		"in a warm, conversational way. Always respond with valid JSON in the requested format."
)

var errMalformedReply = errors.New("malformed model reply")

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat-completion call.
type ChatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	MaxTokens      int               `json:"max_tokens"`
	Temperature    float64           `json:"temperature"`
}

// ChatResponse keeps only the fields the service reads.
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// LLMService asks a chat-completion API for cooking guidance.
type LLMService struct {
	client      *resty.Client
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	cache       *redis.Client
	cacheTTL    time.Duration
}

// NewLLMService creates a new LLMService instance. cache may be nil.
func NewLLMService(cfg config.LLMConfig, cache *redis.Client) *LLMService {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &LLMService{
		client:      client,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		cache:       cache,
		cacheTTL:    cfg.CacheTTL,
	}
}

// GetCookingInstructions returns guidance for cooking recipeName with the
// given ingredients. Failures are logged and turned into a fallback with a
// single apologetic instruction; fallbacks are not cached.
func (s *LLMService) GetCookingInstructions(ctx context.Context, recipeName string, userIngredients, recipeIngredients []string) types.Guidance {
	key := guidanceCacheKey(recipeName, userIngredients, recipeIngredients)
	if g, ok := s.cached(ctx, key); ok {
		return g
	}

	if s.apiKey == "" {
		logger.Warn("llm api key not configured", zap.String("recipe", recipeName))
		return fallbackGuidance(FallbackConnect)
	}

	content, err := s.complete(ctx, buildPrompt(recipeName, userIngredients, recipeIngredients))
	if err != nil {
		logger.Error("error getting cooking instructions", zap.String("recipe", recipeName), zap.Error(err))
		return fallbackGuidance(FallbackConnect)
	}

	g, err := parseGuidance(content)
	if err != nil {
		logger.Error("failed to parse cooking instructions", zap.String("recipe", recipeName), zap.Error(err))
		return fallbackGuidance(FallbackMalformed)
	}

	s.store(ctx, key, g)
	return g
}

func (s *LLMService) complete(ctx context.Context, prompt string) (string, error) {
	req := ChatRequest{
		Model: s.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		MaxTokens:      s.maxTokens,
		Temperature:    s.temperature,
	}

	var out ChatResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}

func parseGuidance(content string) (types.Guidance, error) {
	var g types.Guidance
	if strings.TrimSpace(content) == "" {
		return g, errMalformedReply
	}
	if err := json.Unmarshal([]byte(content), &g); err != nil {
		return g, fmt.Errorf("%w: %v", errMalformedReply, err)
	}
	if len(g.Instructions) == 0 {
		return g, fmt.Errorf("%w: no instructions", errMalformedReply)
	}
	g.Normalize()
	return g, nil
}

func fallbackGuidance(msg string) types.Guidance {
	g := types.Guidance{Instructions: []string{msg}}
	g.Normalize()
	return g
}

// missingIngredients uses exact string membership, unlike the search scorer.
func missingIngredients(userIngredients, recipeIngredients []string) []string {
	have := make(map[string]bool, len(userIngredients))
	for _, u := range userIngredients {
		have[u] = true
	}
	var missing []string
	for _, r := range recipeIngredients {
		if !have[r] {
			missing = append(missing, r)
		}
	}
	return missing
}

func buildPrompt(recipeName string, userIngredients, recipeIngredients []string) string {
	missing := "None"
	if m := missingIngredients(userIngredients, recipeIngredients); len(m) > 0 {
		missing = strings.Join(m, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Someone wants to cook %q and has these ingredients: %s.\n",
		recipeName, strings.Join(userIngredients, ", "))
	fmt.Fprintf(&b, "The full recipe needs: %s.\n", strings.Join(recipeIngredients, ", "))
	fmt.Fprintf(&b, "Missing ingredients: %s.\n\n", missing)
	b.WriteString("Explain how to cook it the way an Indian mother would teach her child: ")
	b.WriteString("warm, natural and conversational, in Indian English, using words like hing, jeera and haldi where they fit.\n\n")
	b.WriteString("Respond with a JSON object with exactly these keys:\n")
	b.WriteString(`- "instructions": array of step-by-step cooking instructions` + "\n")
	b.WriteString(`- "substitutions": array of substitutions for the missing ingredients` + "\n")
	b.WriteString(`- "tips": array of practical cooking tips` + "\n")
	b.WriteString(`- "cultural_context": string with background or interesting facts about the dish` + "\n")
	b.WriteString(`- "serving_suggestions": array of serving suggestions` + "\n")
	return b.String()
}

func guidanceCacheKey(recipeName string, userIngredients, recipeIngredients []string) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode([]interface{}{recipeName, userIngredients, recipeIngredients})
	return guidanceCachePrefix + hex.EncodeToString(h.Sum(nil))
}

func (s *LLMService) cached(ctx context.Context, key string) (types.Guidance, bool) {
	var g types.Guidance
	if s.cache == nil {
		return g, false
	}
	data, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("guidance cache read failed", zap.Error(err))
		}
		return g, false
	}
	if err := json.Unmarshal(data, &g); err != nil {
		logger.Warn("guidance cache entry unreadable", zap.String("key", key), zap.Error(err))
		return g, false
	}
	g.Normalize()
	return g, true
}

func (s *LLMService) store(ctx context.Context, key string, g types.Guidance) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(g)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
		logger.Warn("guidance cache write failed", zap.Error(err))
	}
}
