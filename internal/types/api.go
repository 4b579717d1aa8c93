package types

import "github.com/go-playground/validator/v10"

// ResumePayload is one resume submitted through the HTTP API.
type ResumePayload struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// RankRequest is the body of POST /rank.
type RankRequest struct {
	JobDescription string          `json:"job_description" validate:"required"`
	Resumes        []ResumePayload `json:"resumes" validate:"required,min=1,dive"`
}

// ScoreRequest is the body of POST /score.
type ScoreRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
