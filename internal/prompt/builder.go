// Package prompt owns the text contract with the Generation Client: the
// fixed instruction sent with every request and the parser for the answer.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	KeyQuestions = "Interview Questions"
	KeyAnswers   = "Detailed Answers"

	MinQuestions     = 1
	MaxQuestions     = 50
	DefaultQuestions = 10
)

// Instruction is sent verbatim ahead of the serialized input. Changing the
// output shape it asks for requires the same change in ParseResult and schema.go.
const Instruction = `You are an AI assistant specializing in interview preparation. You will provide a list of common interview questions
for a given job role, and also offer detailed answers based on the provided resume and job description. Provide the
questions and answers in the following format:
{
  "Interview Questions": ["question1", "question2", ...],
  "Detailed Answers": {
    "question1": "answer1",
    "question2": "answer2",
    ...
  }
}
`

// Request is the input of one generate action.
type Request struct {
	JobRole        string `json:"Job Role"`
	Resume         string `json:"Resume"`
	JobDescription string `json:"Job Description"`
	QuestionCount  int    `json:"Number of Questions"`
}

// Build returns the instruction followed by the JSON encoding of r.
func Build(r Request) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("encode prompt input: %w", err)
	}
	return Instruction + strings.TrimSuffix(buf.String(), "\n"), nil
}
