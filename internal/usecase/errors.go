package usecase

import (
	"errors"
	"fmt"

	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/fadilmartias/interview-prep/internal/service"
	"github.com/fadilmartias/interview-prep/internal/util"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrPasswordMismatch     = fmt.Errorf("%w: passwords do not match", ErrRegistrationFailed)
	ErrMissingFields        = errors.New("job role, resume and job description are required")
	ErrInvalidQuestionCount = fmt.Errorf("number of questions must be between %d and %d", prompt.MinQuestions, prompt.MaxQuestions)
	ErrBusy                 = errors.New("generation already in progress")
	ErrResumeTooLarge       = errors.New("resume file is too large")
)

const (
	KindInvalidCredentials = "invalid_credentials"
	KindRegistrationFailed = "registration_failed"
	KindValidation         = "validation"
	KindBusy               = "busy"
	KindUnreadablePDF      = "unreadable_pdf"
	KindMalformedResponse  = "malformed_response"
	KindGenerationService  = "generation_service_error"
	KindInternal           = "internal"
)

// Failure is what the user sees for an error caught at an action boundary.
type Failure struct {
	Kind   string
	Notice navigation.Notice
}

// Describe maps err onto the user-facing failure. Generation and parsing
// failures keep their diagnostic text.
func Describe(err error) Failure {
	var genErr *service.GenerationError

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return failure(KindInvalidCredentials, navigation.LevelError, navigation.MsgInvalidCredentials)
	case errors.Is(err, ErrPasswordMismatch):
		return failure(KindRegistrationFailed, navigation.LevelError, navigation.MsgPasswordMismatch)
	case errors.Is(err, ErrRegistrationFailed):
		return failure(KindRegistrationFailed, navigation.LevelError, navigation.MsgSignupFailed)
	case errors.Is(err, ErrMissingFields):
		return failure(KindValidation, navigation.LevelWarning, "Please enter the job role, upload your resume, and paste the job description.")
	case errors.Is(err, ErrInvalidQuestionCount):
		return failure(KindValidation, navigation.LevelWarning, "The number of questions must be between 1 and 50.")
	case errors.Is(err, ErrResumeTooLarge):
		return failure(KindValidation, navigation.LevelWarning, "The resume file is too large (max 5MB).")
	case errors.Is(err, util.ErrUnsupportedFormat):
		return failure(KindValidation, navigation.LevelWarning, "Please upload your resume as a PDF (or DOCX) file.")
	case errors.Is(err, ErrBusy):
		return failure(KindBusy, navigation.LevelWarning, "Your interview preparation materials are still being generated. Please wait.")
	case errors.Is(err, util.ErrUnreadablePDF), errors.Is(err, util.ErrUnreadableDOCX):
		return failure(KindUnreadablePDF, navigation.LevelError, "Could not read the uploaded resume: "+err.Error())
	case errors.Is(err, prompt.ErrMalformedResponse):
		return failure(KindMalformedResponse, navigation.LevelError, "An error occurred: "+err.Error())
	case errors.As(err, &genErr):
		return failure(KindGenerationService, navigation.LevelError, "An error occurred: "+err.Error())
	default:
		return failure(KindInternal, navigation.LevelError, "An error occurred: "+err.Error())
	}
}

func failure(kind string, level navigation.Level, msg string) Failure {
	return Failure{Kind: kind, Notice: navigation.Notice{Level: level, Message: msg}}
}
