package dto

import "github.com/fadilmartias/interview-prep/internal/prompt"

type PreparationDTO struct {
	JobRole   string        `json:"job_role"`
	Requested int           `json:"requested"`
	Returned  int           `json:"returned"`
	Items     []prompt.Pair `json:"items"`
}

func NewPreparationDTO(jobRole string, r *prompt.Result) PreparationDTO {
	return PreparationDTO{
		JobRole:   jobRole,
		Requested: r.Requested,
		Returned:  len(r.Questions),
		Items:     r.Pairs(),
	}
}
