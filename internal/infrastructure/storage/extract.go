package storage

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ResumeTextExtractor pulls plain text out of uploaded resumes for scoring.
// PDF goes through a real parser; plain text passes through; binary Word
// documents fall back to salvaging printable runs, which is rough but good
// enough for keyword scoring.
type ResumeTextExtractor struct{}

func NewResumeTextExtractor() *ResumeTextExtractor {
	return &ResumeTextExtractor{}
}

func (e *ResumeTextExtractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".txt":
		return string(data), nil
	case ".doc", ".docx":
		return salvagePrintable(data), nil
	default:
		return "", fmt.Errorf("no extractor for %q", filename)
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return sb.String(), nil
}

// salvagePrintable keeps printable runs of at least minRun characters and
// joins them with spaces. Word containers bury the visible text among
// markup and binary structure; the runs that survive are the words.
func salvagePrintable(data []byte) string {
	const minRun = 4

	var sb strings.Builder
	var run []rune
	flush := func() {
		if len(run) >= minRun {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(run))
		}
		run = run[:0]
	}

	for _, r := range string(data) {
		if unicode.IsPrint(r) && r != unicode.ReplacementChar {
			run = append(run, r)
			continue
		}
		flush()
	}
	flush()

	return sb.String()
}
