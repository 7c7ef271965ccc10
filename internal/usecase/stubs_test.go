package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	text  string
	err   error
	panic bool
	calls int
}

func (s *stubExtractor) Extract(string, []byte) (string, error) {
	s.calls++
	if s.panic {
		panic("extractor exploded")
	}
	return s.text, s.err
}

type stubClient struct {
	raw     string
	err     error
	prompts []string
	// during runs inside Generate, while the busy flag is held.
	during func()
}

func (s *stubClient) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.during != nil {
		s.during()
	}
	return s.raw, s.err
}

func completion(t *testing.T, questions ...string) string {
	t.Helper()
	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		answers[q] = fmt.Sprintf("Answer %d", i+1)
	}
	raw, err := json.Marshal(map[string]any{
		"Interview Questions": questions,
		"Detailed Answers":    answers,
	})
	require.NoError(t, err)
	return string(raw)
}
