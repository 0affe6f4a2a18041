// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/textcentre/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxParseAttempts bounds how often a malformed JSON answer is re-requested.
const maxParseAttempts = 3

// Proofreader implements ai.Proofreader using OpenAI-compatible chat APIs.
type Proofreader struct {
	client     llms.Model
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// correction and proofreading mirror the JSON document requested from the model.
type correction struct {
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Reason      string `json:"reason"`
}

type proofreading struct {
	CorrectedText string       `json:"corrected_text"`
	Corrections   []correction `json:"corrections"`
}

// newProofreader is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newProofreader(config *ai.Config) (*Proofreader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ProofreaderHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.ProofreaderModel),
	)
	if err != nil {
		return nil, err
	}

	return newProofreaderWithModel(client, config), nil
}

func newProofreaderWithModel(client llms.Model, config *ai.Config) *Proofreader {
	return &Proofreader{
		client:     client,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
		logger:     slog.Default().With("component", "openai-proofreader"),
	}
}

// NewProofreader creates a new proofreader using the provided configuration.
//
// Returns ai.Proofreader interface to enforce abstraction.
func NewProofreader(config *ai.Config) (ai.Proofreader, error) {
	return newProofreader(config)
}

// Proofread asks the model to correct text and parses its JSON answer.
// Transport failures are retried with exponential backoff; malformed JSON is
// repaired where possible and otherwise re-requested.
func (p *Proofreader) Proofread(ctx context.Context, text string, language ai.Language) (*ai.Proofreading, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ai.ErrEmptyText
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(buildSystemPrompt(language.Name))},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(text)},
		},
	}

	var result proofreading
	var lastErr error
	for attempt := 0; attempt < maxParseAttempts; attempt++ {
		var response *llms.ContentResponse
		err := ai.RetryWithBackoff(ctx, func() error {
			var genErr error
			response, genErr = p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
			return genErr
		}, p.maxRetries, p.retryDelay)
		if err != nil {
			p.logger.Error("failed to generate content", "language", language.Code, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			p.logger.Debug("no choices returned from model")
			return &ai.Proofreading{CorrectedText: text}, nil
		}

		responseText := stripCodeFence(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		result = proofreading{}
		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			p.logger.Warn("error parsing proofreader response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		p.logger.Error("failed to parse proofreader response after retries", "err", lastErr)
		return nil, fmt.Errorf("parse proofreader response: %w", lastErr)
	}

	if result.CorrectedText == "" {
		result.CorrectedText = text
	}

	out := &ai.Proofreading{
		CorrectedText: result.CorrectedText,
		Corrections:   make([]ai.Correction, 0, len(result.Corrections)),
	}
	for _, c := range result.Corrections {
		if c.Original == c.Replacement {
			continue
		}
		out.Corrections = append(out.Corrections, ai.Correction{
			Original:    c.Original,
			Replacement: c.Replacement,
			Reason:      c.Reason,
		})
	}

	p.logger.Debug("proofread text", "language", language.Code, "corrections", len(out.Corrections))
	return out, nil
}

// stripCodeFence removes markdown code fences some models wrap JSON in.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
