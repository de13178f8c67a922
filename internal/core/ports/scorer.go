package ports

import "context"

// ScoreRequest is the input to the external resume scoring collaborator.
type ScoreRequest struct {
	ResumeText     string
	JobTitle       string
	RequiredSkills []string
}

// ScoreResult is the fit signal computed by the collaborator.
type ScoreResult struct {
	// Score is the fit score in [0, 100].
	Score    float64
	Keywords []string
}

// ResumeScorer is the opaque external scoring service. Implementations
// must bound their wait; a failure here never blocks a submission.
type ResumeScorer interface {
	Score(ctx context.Context, req ScoreRequest) (*ScoreResult, error)
}
