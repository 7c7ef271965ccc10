package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/interview-prep/internal/config"
	"github.com/fadilmartias/interview-prep/internal/prompt"
	"github.com/fadilmartias/interview-prep/internal/service"
	"github.com/fadilmartias/interview-prep/internal/usecase"
	"github.com/fadilmartias/interview-prep/internal/util"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate interview questions and answers for a resume",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		resumePath, _ := cmd.Flags().GetString("resume")
		description, _ := cmd.Flags().GetString("description")
		descriptionFile, _ := cmd.Flags().GetString("description-file")
		questions, _ := cmd.Flags().GetInt("questions")

		if descriptionFile != "" {
			raw, err := os.ReadFile(descriptionFile)
			if err != nil {
				return fmt.Errorf("read job description: %w", err)
			}
			description = string(raw)
		}

		var resume []byte
		if resumePath != "" {
			raw, err := os.ReadFile(resumePath)
			if err != nil {
				return fmt.Errorf("read resume: %w", err)
			}
			resume = raw
		}

		ctx := context.Background()
		client, err := service.NewGenerationClient(ctx, config.LoadGenerationConfig(), config.LoadGeminiConfig(), config.LoadOpenRouterConfig())
		if err != nil {
			return fmt.Errorf("invalid generation config: %w", err)
		}

		uc := usecase.NewPreparationUsecase(util.NewDocumentExtractor(config.LoadAppConfig().PDFExtractor), client, nil)
		result, err := uc.Generate(ctx, "cli", usecase.Input{
			JobRole:        role,
			JobDescription: description,
			ResumeName:     filepath.Base(resumePath),
			Resume:         resume,
			QuestionCount:  questions,
		})
		if err != nil {
			return errors.New(usecase.Describe(err).Notice.Message)
		}

		printResult(cmd.OutOrStdout(), result)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("role", "", "Job role, e.g. \"Backend Engineer\"")
	generateCmd.Flags().String("resume", "", "Path to the resume (PDF or DOCX)")
	generateCmd.Flags().String("description", "", "Job description text")
	generateCmd.Flags().String("description-file", "", "Read the job description from a file")
	generateCmd.Flags().IntP("questions", "n", prompt.DefaultQuestions, "Number of questions (1-50)")
}

func printResult(w io.Writer, result *prompt.Result) {
	fmt.Fprintln(w, "Interview Preparation Materials:")
	if result.Short() {
		fmt.Fprintf(w, "(the service returned %d of %d requested questions)\n", len(result.Questions), result.Requested)
	}
	for i, pair := range result.Pairs() {
		fmt.Fprintf(w, "\nQuestion %d: %s\n", i+1, pair.Question)
		fmt.Fprintf(w, "Answer: %s\n", pair.Answer)
		fmt.Fprintln(w, strings.Repeat("-", 3))
	}
}
