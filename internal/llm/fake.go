package llm

import "context"

// Fake is an in-memory Client used by tests. It records every prompt it
// receives.
type Fake struct {
	Response string
	Err      error
	Prompts  []string
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	if f.Response == "" {
		return "", ErrEmptyResponse
	}
	return f.Response, nil
}
