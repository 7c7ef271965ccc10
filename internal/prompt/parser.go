package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrMalformedResponse marks a completion that does not follow the contracted shape.
var ErrMalformedResponse = errors.New("malformed response")

type Pair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Result struct {
	Questions []string
	Answers   map[string]string
	Requested int
}

// Pairs returns the questions in order, each with its answer.
func (r *Result) Pairs() []Pair {
	pairs := make([]Pair, 0, len(r.Questions))
	for _, q := range r.Questions {
		pairs = append(pairs, Pair{Question: q, Answer: r.Answers[q]})
	}
	return pairs
}

// Short reports whether the service returned fewer questions than requested.
func (r *Result) Short() bool {
	return len(r.Questions) < r.Requested
}

type payload struct {
	Questions []string          `json:"Interview Questions"`
	Answers   map[string]string `json:"Detailed Answers"`
}

// ParseResult decodes a completion and keeps at most questionCount questions.
// A questionCount below 1 disables truncation.
func ParseResult(raw string, questionCount int) (*Result, error) {
	text := cleanJSON(raw)
	if text == "" {
		return nil, malformed("empty response")
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile response schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, malformed("schema validation failed: %v", err)
	}

	var p payload
	if err := json.Unmarshal([]byte(text), &p); err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}
	if len(p.Questions) == 0 {
		return nil, malformed("no questions returned")
	}
	for _, q := range p.Questions {
		if _, ok := p.Answers[q]; !ok {
			return nil, malformed("no answer for question %q", q)
		}
	}

	questions := p.Questions
	if questionCount > 0 && len(questions) > questionCount {
		questions = questions[:questionCount]
	}
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		answers[q] = p.Answers[q]
	}

	requested := questionCount
	if requested < 1 {
		requested = len(questions)
	}
	return &Result{Questions: questions, Answers: answers, Requested: requested}, nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

// cleanJSON strips the Markdown code fence models like to wrap JSON in.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
