package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/theapemachine/webtool/pkg/errors"
)

// DefaultMaxTokens caps summary length when the caller does not.
const DefaultMaxTokens = 200

/*
Summarizer condenses text through a locally served generation model. The
model is resolved lazily at call time so the service starts fine with
summarization unavailable.
*/
type Summarizer struct {
	Model  string
	client *api.Client
}

/*
Summarize prompts the model to condense text and returns the trimmed
generation, capped at maxTokens. It fails with a ConfigurationError when no
model is configured; model invocation failures propagate as internal errors
without retry.
*/
func (s *Summarizer) Summarize(ctx context.Context, text string, maxTokens int) (string, error) {
	if s.Model == "" {
		return "", &errors.ConfigurationError{
			Msg: "no summarization model configured, set the LLM environment variable",
		}
	}

	if s.client == nil {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return "", errors.Internal(err, "failed to create model client")
		}
		s.client = client
	}

	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	prompt := fmt.Sprintf("Summarize the following text concisely:\n\n%s\n\nSummary:", text)
	stream := false

	req := &api.GenerateRequest{
		Model:  s.Model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": 0.7,
			"num_predict": maxTokens,
			"stop":        []string{"\n\n"},
		},
	}

	var out strings.Builder

	err := s.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		out.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", errors.Internal(err, "model invocation failed")
	}

	return strings.TrimSpace(out.String()), nil
}
