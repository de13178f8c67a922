package handler

import "time"

// --- Request / Response types ---

// jobRequest is shared by create and update. Skills arrive as a single
// comma-delimited string and are split server-side.
type jobRequest struct {
	Title          string `json:"title"           validate:"required"`
	Description    string `json:"description"     validate:"required"`
	RequiredSkills string `json:"required_skills" validate:"required"`
	Experience     string `json:"experience"`
	Location       string `json:"location"        validate:"required"`
	JobType        string `json:"job_type"        validate:"required,oneof=full_time part_time contract internship"`
	Deadline       string `json:"deadline"`
}

type jobResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	RequiredSkills   []string   `json:"required_skills"`
	Experience       string     `json:"experience,omitempty"`
	Location         string     `json:"location"`
	JobType          string     `json:"job_type"`
	PostedAt         time.Time  `json:"posted_at"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	Active           bool       `json:"active"`
	PostedByName     string     `json:"posted_by_name"`
	PostedByEmail    string     `json:"posted_by_email"`
	ApplicationCount int64      `json:"application_count"`
}
