package main

import (
	"bytes"
	"testing"

	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintResult(t *testing.T) {
	res, err := prompt.ParseResult(`{"Interview Questions":["Why Go?","Explain Raft."],"Detailed Answers":{"Why Go?":"Simplicity.","Explain Raft.":"Consensus."}}`, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	printResult(&buf, res)

	out := buf.String()
	assert.Contains(t, out, "(the service returned 2 of 3 requested questions)")
	assert.Contains(t, out, "Question 1: Why Go?\nAnswer: Simplicity.\n---")
	assert.Contains(t, out, "Question 2: Explain Raft.\nAnswer: Consensus.\n---")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["generate"])
	assert.True(t, names["register"])
}
