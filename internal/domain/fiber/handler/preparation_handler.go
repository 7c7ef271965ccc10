package handler

import (
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fadilmartias/interview-prep/internal/dto"
	"github.com/fadilmartias/interview-prep/internal/middleware"
	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/fadilmartias/interview-prep/internal/usecase"
	"github.com/fadilmartias/interview-prep/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxResumeSize = 5 * 1024 * 1024

// Generate runs the pipeline for the main screen form and renders the result in place.
func (h *PageHandler) Generate(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	st := navigation.Resolve(sess.State())
	if !st.Authenticated {
		return h.commit(c, sess, st, navigation.Notice{})
	}

	owner := sess.ID()
	data := h.newPageData(st, sess.Username(), navigation.Notice{})
	in, form, err := readInput(c)
	data.Form = form

	status := fiber.StatusOK
	if err == nil {
		var result *prompt.Result
		result, err = h.prep.Generate(c.UserContext(), owner, in)
		if err == nil {
			prep := dto.NewPreparationDTO(in.JobRole, result)
			data.Result = &prep
		}
	}
	if err != nil {
		failure := usecase.Describe(err)
		log.Printf("Generate for session %s failed (%s): %v", owner, failure.Kind, err)
		data.Notice = failure.Notice
		status = statusFor(failure.Kind)
	}
	return render(c, status, data)
}

// GenerateJSON is the API twin of Generate for authenticated sessions.
func (h *PageHandler) GenerateJSON(c *fiber.Ctx) error {
	sess := middleware.CurrentSession(c)
	owner := sess.ID()

	in, _, err := readInput(c)
	if err == nil {
		var result *prompt.Result
		result, err = h.prep.Generate(c.UserContext(), owner, in)
		if err == nil {
			return util.SuccessResponse(c, util.SuccessResponseFormat{
				Message: "Success generate interview preparation",
				Data:    dto.NewPreparationDTO(in.JobRole, result),
			})
		}
	}

	failure := usecase.Describe(err)
	log.Printf("API generate for session %s failed (%s): %v", owner, failure.Kind, err)
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    statusFor(failure.Kind),
		Kind:    failure.Kind,
		Message: failure.Notice.Message,
	}, err)
}

// readInput collects the multipart form. The returned form values are echoed
// back into the page so the user does not lose what they typed.
func readInput(c *fiber.Ctx) (usecase.Input, formValues, error) {
	form := formValues{
		JobRole:        c.FormValue("job_role"),
		JobDescription: c.FormValue("job_description"),
		QuestionCount:  prompt.DefaultQuestions,
	}
	in := usecase.Input{
		JobRole:        form.JobRole,
		JobDescription: form.JobDescription,
		QuestionCount:  prompt.DefaultQuestions,
	}

	if raw := strings.TrimSpace(c.FormValue("num_questions")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return in, form, usecase.ErrInvalidQuestionCount
		}
		form.QuestionCount, in.QuestionCount = n, n
	}

	file, err := c.FormFile("resume")
	if err != nil {
		// No upload: Validate reports the missing field.
		return in, form, in.Validate()
	}
	if file.Size > maxResumeSize {
		return in, form, usecase.ErrResumeTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return in, form, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxResumeSize+1))
	if err != nil {
		return in, form, err
	}
	if len(data) > maxResumeSize {
		return in, form, usecase.ErrResumeTooLarge
	}

	in.ResumeName = file.Filename
	in.Resume = data
	return in, form, nil
}

func statusFor(kind string) int {
	switch kind {
	case usecase.KindValidation, usecase.KindUnreadablePDF:
		return fiber.StatusUnprocessableEntity
	case usecase.KindBusy:
		return fiber.StatusConflict
	case usecase.KindInvalidCredentials:
		return fiber.StatusUnauthorized
	case usecase.KindMalformedResponse, usecase.KindGenerationService:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
