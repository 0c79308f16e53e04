package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"allergy-assistant/internal/config"
	"allergy-assistant/internal/metrics"
)

// ErrEmptyResponse means Gemini answered without usable text: no response,
// no candidates, no text part, or the content was blocked.
var ErrEmptyResponse = errors.New("gemini returned no usable candidate")

// GenerationError wraps a failed call to the Gemini API.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "gemini generation failed: " + e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }

// GenerationSettings are the sampling parameters applied to every request.
type GenerationSettings struct {
	Temperature     float32
	MaxOutputTokens int32
	TopP            float32
	TopK            int32
}

func DefaultGenerationSettings() GenerationSettings {
	return GenerationSettings{
		Temperature:     0.5,
		MaxOutputTokens: 150,
		TopP:            0.9,
		TopK:            20,
	}
}

func (g GenerationSettings) apply(model *genai.GenerativeModel) {
	model.SetTemperature(g.Temperature)
	model.SetMaxOutputTokens(g.MaxOutputTokens)
	model.SetTopP(g.TopP)
	model.SetTopK(g.TopK)
}

// sendFunc sends parts as the next user message after history.
type sendFunc func(ctx context.Context, history []*genai.Content, parts ...genai.Part) (*genai.GenerateContentResponse, error)

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	debug  bool
	send   sendFunc
}

func NewGeminiService(ctx context.Context, cfg *config.Config) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	DefaultGenerationSettings().apply(model)

	s := &GeminiService{
		client: client,
		model:  model,
		debug:  cfg.Debug,
	}
	s.send = s.sendChat
	return s, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// sendChat opens a fresh chat session per request so no state is shared
// between callers.
func (s *GeminiService) sendChat(ctx context.Context, history []*genai.Content, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	cs := s.model.StartChat()
	cs.History = history
	return cs.SendMessage(ctx, parts...)
}

// Generate sends the shaped conversation to Gemini and returns the text of
// the first candidate. The final turn is sent as the new message and all
// earlier turns travel as chat history.
func (s *GeminiService) Generate(ctx context.Context, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", errors.New("conversation has no turns")
	}

	history := toContents(turns[:len(turns)-1])
	last := turns[len(turns)-1]

	start := time.Now()
	resp, err := s.send(ctx, history, genai.Text(last.Text))
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			metrics.GenerationOutcomes.WithLabelValues(metrics.OutcomeBlocked).Inc()
			log.Printf("Gemini blocked the response: %v", err)
			return "", fmt.Errorf("%w: %v", ErrEmptyResponse, err)
		}
		metrics.GenerationOutcomes.WithLabelValues(metrics.OutcomeError).Inc()
		log.Printf("Gemini API error: %v", err)
		return "", &GenerationError{Err: err}
	}

	if s.debug {
		logResponse(resp)
	}

	text, err := extractReply(resp)
	if err != nil {
		metrics.GenerationOutcomes.WithLabelValues(metrics.OutcomeEmpty).Inc()
		log.Println("Invalid response structure from Gemini API")
		return "", err
	}

	metrics.GenerationOutcomes.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return text, nil
}

func toContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, &genai.Content{
			Role:  t.Role.String(),
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

// extractReply takes the first candidate's first part as text.
func extractReply(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text, ok := cand.Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrEmptyResponse
	}
	return string(text), nil
}

func logResponse(resp *genai.GenerateContentResponse) {
	if resp == nil {
		return
	}
	for i, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		log.Printf("Gemini Candidate %d: FinishReason=%s, TokenCount=%d", i, cand.FinishReason, cand.TokenCount)
		if cand.FinishReason != genai.FinishReasonStop {
			log.Printf("WARNING: Gemini stopped due to %s", cand.FinishReason)
		}
	}
	if u := resp.UsageMetadata; u != nil {
		log.Printf("Gemini tokens: prompt=%d, response=%d, total=%d",
			u.PromptTokenCount, u.CandidatesTokenCount, u.TotalTokenCount)
	}
}
