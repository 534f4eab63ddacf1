package polish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/wpslint/pkg/config"
)

// stubTransformer returns a fixed result or error.
type stubTransformer struct {
	out string
	err error

	gotInstruction string
	gotText        string
}

func (s *stubTransformer) Transform(_ context.Context, instruction, text string) (string, error) {
	s.gotInstruction = instruction
	s.gotText = text
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestPolishNilTransformerKeepsInput(t *testing.T) {
	t.Parallel()

	got := Polish(context.Background(), nil, PolishInstruction, "rule-based clean copy")
	assert.Equal(t, "rule-based clean copy", got)
}

func TestPolishSuccessReturnsTransformed(t *testing.T) {
	t.Parallel()

	stub := &stubTransformer{out: "polished copy"}

	got := Polish(context.Background(), stub, PolishInstruction, "clean copy")

	assert.Equal(t, "polished copy", got)
	assert.Equal(t, PolishInstruction, stub.gotInstruction)
	assert.Equal(t, "clean copy", stub.gotText)
}

func TestPolishErrorFallsBackToInput(t *testing.T) {
	t.Parallel()

	stub := &stubTransformer{err: errors.New("service unavailable")}

	got := Polish(context.Background(), stub, PolishInstruction, "clean copy")
	assert.Equal(t, "clean copy", got)
}

func TestNewOpenAIClientWithoutKeyIsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewOpenAIClient("", config.NewConfig().Polish))
}

func TestNewOpenAIClientDefaultsModel(t *testing.T) {
	t.Parallel()

	client := NewOpenAIClient("sk-test", config.PolishConfig{})
	if assert.NotNil(t, client) {
		assert.Equal(t, "gpt-4o-mini", client.model)
	}
}

func TestStartersAreStable(t *testing.T) {
	t.Parallel()

	starters := Starters()
	assert.Len(t, starters, 4)
	assert.Equal(t, "Draft my WPS", starters[0].Title)
	for _, s := range starters {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Prompt)
	}
}
