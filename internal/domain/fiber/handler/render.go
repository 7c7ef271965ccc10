package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/fadilmartias/interview-prep/internal/dto"
	"github.com/fadilmartias/interview-prep/internal/navigation"
	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/gofiber/fiber/v2"
)

//go:embed views/*.html
var viewFS embed.FS

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(viewFS, "views/*.html"))

type formValues struct {
	JobRole        string
	JobDescription string
	QuestionCount  int
}

type pageData struct {
	AppName      string
	Screen       navigation.Screen
	Username     string
	Notice       navigation.Notice
	Form         formValues
	Result       *dto.PreparationDTO
	MinQuestions int
	MaxQuestions int
}

func (h *PageHandler) newPageData(st navigation.State, username string, notice navigation.Notice) pageData {
	return pageData{
		AppName:      h.appName,
		Screen:       st.Screen,
		Username:     username,
		Notice:       notice,
		Form:         formValues{QuestionCount: prompt.DefaultQuestions},
		MinQuestions: prompt.MinQuestions,
		MaxQuestions: prompt.MaxQuestions,
	}
}

// render writes the template of data.Screen. The screen must already be resolved.
func render(c *fiber.Ctx, status int, data pageData) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, string(data.Screen)+".html", data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
