package analyzer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"interview-insights-go/internal/logger"
	"interview-insights-go/internal/types"
)

const (
	maxCompletionTokens = 4096
	maxRetryTime        = 45 * time.Second
)

// OpenAI analyzes transcripts through the chat completions API, asking for a
// JSON object and recovering the payload even when the model wraps it in
// prose or fences.
type OpenAI struct {
	client *openai.Client
	model  string
	log    *logrus.Entry
}

func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.New().Component("analyzer"),
	}
}

func (c *OpenAI) Analyze(ctx context.Context, transcript string) (*types.AnalysisRecord, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(transcript)},
		},
	}
	// Reasoning models reject MaxTokens.
	if strings.HasPrefix(c.model, "o1") || strings.HasPrefix(c.model, "o3") || strings.HasPrefix(c.model, "o4") || strings.HasPrefix(c.model, "gpt-5") {
		req.MaxCompletionTokens = maxCompletionTokens
	} else {
		req.MaxTokens = maxCompletionTokens
	}

	var rec *types.AnalysisRecord
	var lastErr error
	op := func() error {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			var apiErr *openai.APIError
			if errors.As(err, &apiErr) && apiErr.HTTPStatusCode >= 400 && apiErr.HTTPStatusCode < 500 && apiErr.HTTPStatusCode != 429 {
				return backoff.Permanent(err)
			}
			c.log.WithError(err).Warn("chat completion failed, retrying")
			return err
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("empty choices in completion response")
			return lastErr
		}
		parsed, err := ParseAnalysis(resp.Choices[0].Message.Content)
		if err != nil {
			lastErr = err
			c.log.WithError(err).Warn("analysis reply did not parse, retrying")
			return err
		}
		rec = parsed
		lastErr = nil
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("analyze transcript: %w", lastErr)
	}
	return rec, nil
}
