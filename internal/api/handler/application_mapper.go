package handler

import (
	"github.com/getready/ats-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toApplicationResponse(d ports.ApplicationDetail) applicationResponse {
	resp := applicationResponse{
		ID:             d.ID,
		JobID:          d.JobID,
		JobTitle:       d.JobTitle,
		CandidateID:    d.CandidateID,
		CandidateName:  d.CandidateName,
		CandidateEmail: d.CandidateEmail,
		ResumeFileID:   d.ResumeFileID,
		ResumeFileName: d.ResumeFileName,
		Notes:          d.Notes,
		AIScore:        d.AIScore,
		AIKeywords:     d.AIKeywords,
		Status:         d.Status,
		AppliedAt:      d.AppliedAt,
	}
	if d.Interview != nil {
		resp.Interview = &interviewResponse{
			Date:        d.Interview.Date,
			Time:        d.Interview.Time,
			Location:    d.Interview.Location,
			Interviewer: d.Interview.Interviewer,
			ScheduledAt: d.Interview.ScheduledAt,
		}
	}
	return resp
}

func toApplicationResponses(details []ports.ApplicationDetail) []applicationResponse {
	out := make([]applicationResponse, len(details))
	for i, d := range details {
		out[i] = toApplicationResponse(d)
	}
	return out
}

func toInterviewInput(req interviewRequest) ports.InterviewInput {
	return ports.InterviewInput{
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Interviewer: req.Interviewer,
	}
}
