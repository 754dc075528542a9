package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"
)

// OllamaClient generates against a local Ollama server.
type OllamaClient struct {
	client *ollama.Ollama
	model  string
}

// NewOllamaClient builds an Ollama-backed Client for the given host URL.
func NewOllamaClient(host, model string) (*OllamaClient, error) {
	ollamaURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}
	return &OllamaClient{
		client: ollama.New(*ollamaURL),
		model:  model,
	}, nil
}

func (oc *OllamaClient) Name() string { return "Ollama:" + oc.model }

// Generate uses the Generate endpoint, which is the simplest fit for a
// single one-shot request.
func (oc *OllamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := oc.client.Generate(
		oc.client.Generate.WithModel(oc.model),
		oc.client.Generate.WithPrompt(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	if res.Done {
		if res.Response != "" {
			// Strip the "```" fences the model sometimes adds.
			return strings.TrimSpace(strings.Trim(res.Response, "```")), nil
		}
		return "", ErrEmptyResponse
	}

	return "", fmt.Errorf("ollama request did not complete (unexpected streaming behavior)")
}
