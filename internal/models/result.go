package models

import "time"

// Outcome is the terminal state of one component in a run.
type Outcome string

const (
	OutcomeWritten     Outcome = "written"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeParseFailed Outcome = "parse_failed"
	OutcomeFetchFailed Outcome = "fetch_failed"
	OutcomeNoFiles     Outcome = "no_files"
	OutcomeWriteFailed Outcome = "write_failed"
)

// ComponentResult records what happened to a single component.
type ComponentResult struct {
	Name         string        `json:"name"`
	Outcome      Outcome       `json:"outcome"`
	StatusCode   int           `json:"statusCode,omitempty"`
	FilesWritten int           `json:"filesWritten,omitempty"`
	FromCache    bool          `json:"fromCache,omitempty"`
	Duration     time.Duration `json:"duration"`
	Err          error         `json:"-"`
}

// RunSummary aggregates component results for the final diagnostic.
type RunSummary struct {
	RunID      string            `json:"runId"`
	OutputPath string            `json:"outputPath"`
	Listed     int               `json:"listed"`
	Counts     map[Outcome]int   `json:"counts"`
	Results    []ComponentResult `json:"results"`
	StartedAt  time.Time         `json:"startedAt"`
	FinishedAt time.Time         `json:"finishedAt"`
}

func NewRunSummary(runID, outputPath string) *RunSummary {
	return &RunSummary{
		RunID:      runID,
		OutputPath: outputPath,
		Counts:     make(map[Outcome]int),
		StartedAt:  time.Now().UTC(),
	}
}

// Add records one component result.
func (s *RunSummary) Add(r ComponentResult) {
	s.Counts[r.Outcome]++
	s.Results = append(s.Results, r)
}

// Count returns the number of components that ended in outcome.
func (s *RunSummary) Count(outcome Outcome) int {
	return s.Counts[outcome]
}

// Fields returns the summary as log fields.
func (s *RunSummary) Fields() map[string]interface{} {
	return map[string]interface{}{
		"output":      s.OutputPath,
		"listed":      s.Listed,
		"written":     s.Count(OutcomeWritten),
		"skipped":     s.Count(OutcomeSkipped),
		"parseFailed": s.Count(OutcomeParseFailed),
		"fetchFailed": s.Count(OutcomeFetchFailed),
		"noFiles":     s.Count(OutcomeNoFiles),
		"writeFailed": s.Count(OutcomeWriteFailed),
		"duration":    s.FinishedAt.Sub(s.StartedAt).String(),
	}
}
