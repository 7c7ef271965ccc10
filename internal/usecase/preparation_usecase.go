package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/fadilmartias/interview-prep/internal/service"
)

type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

type Input struct {
	JobRole        string
	JobDescription string
	ResumeName     string
	Resume         []byte
	QuestionCount  int
}

// Validate applies the form rules: all three fields present, count within bounds.
func (in Input) Validate() error {
	if strings.TrimSpace(in.JobRole) == "" || strings.TrimSpace(in.JobDescription) == "" || in.ResumeName == "" || len(in.Resume) == 0 {
		return ErrMissingFields
	}
	if in.QuestionCount < prompt.MinQuestions || in.QuestionCount > prompt.MaxQuestions {
		return ErrInvalidQuestionCount
	}
	return nil
}

type PreparationUsecase struct {
	extractor TextExtractor
	client    service.GenerationClient
	busy      *BusyTracker
}

func NewPreparationUsecase(extractor TextExtractor, client service.GenerationClient, busy *BusyTracker) *PreparationUsecase {
	if busy == nil {
		busy = NewBusyTracker()
	}
	return &PreparationUsecase{extractor: extractor, client: client, busy: busy}
}

// Generate runs extract, prompt, generation and parsing for one request.
// owner identifies the session whose busy flag is held for the duration.
func (uc *PreparationUsecase) Generate(ctx context.Context, owner string, in Input) (*prompt.Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	release, ok := uc.busy.Acquire(owner)
	if !ok {
		return nil, ErrBusy
	}
	defer release()

	start := time.Now()
	resumeText, err := uc.extractor.Extract(in.ResumeName, in.Resume)
	if err != nil {
		return nil, err
	}

	p, err := prompt.Build(prompt.Request{
		JobRole:        strings.TrimSpace(in.JobRole),
		Resume:         resumeText,
		JobDescription: strings.TrimSpace(in.JobDescription),
		QuestionCount:  in.QuestionCount,
	})
	if err != nil {
		return nil, err
	}

	raw, err := uc.client.Generate(ctx, p)
	if err != nil {
		return nil, err
	}

	result, err := prompt.ParseResult(raw, in.QuestionCount)
	if err != nil {
		log.Printf("Unparseable completion (%d chars): %v", len(raw), err)
		return nil, err
	}
	if result.Short() {
		log.Printf("Generation returned %d of %d requested questions", len(result.Questions), result.Requested)
	}

	log.Printf("Generated %d questions for %q in %v", len(result.Questions), in.JobRole, time.Since(start).Round(time.Millisecond))
	return result, nil
}

func (uc *PreparationUsecase) Busy(owner string) bool {
	return uc.busy.Busy(owner)
}

