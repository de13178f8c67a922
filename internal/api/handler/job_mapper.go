package handler

import (
	"strings"

	"github.com/getready/ats-system/internal/core/ports"
)

// --- Request → Service input ---

func toJobInput(req jobRequest) ports.JobInput {
	return ports.JobInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: splitSkills(req.RequiredSkills),
		Experience:     req.Experience,
		Location:       req.Location,
		JobType:        req.JobType,
		Deadline:       req.Deadline,
	}
}

func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// --- Service result → HTTP response ---

func toJobResponse(d ports.JobDetail) jobResponse {
	return jobResponse{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		RequiredSkills:   d.RequiredSkills,
		Experience:       d.Experience,
		Location:         d.Location,
		JobType:          d.JobType,
		PostedAt:         d.PostedAt,
		Deadline:         d.Deadline,
		Active:           d.Active,
		PostedByName:     d.PostedByName,
		PostedByEmail:    d.PostedByEmail,
		ApplicationCount: d.ApplicationCount,
	}
}

func toJobResponses(details []ports.JobDetail) []jobResponse {
	out := make([]jobResponse, len(details))
	for i, d := range details {
		out[i] = toJobResponse(d)
	}
	return out
}
