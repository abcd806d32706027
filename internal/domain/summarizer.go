package domain

import "context"

// SummaryRequest carries the slice of an assessment the AI counselor sees:
// the user's top strengths and the top ranked stream.
type SummaryRequest struct {
	TopStrengths []TagScore
	TopStream    *StreamRecommendation
}

// Summarizer is the port for the external AI text-generation collaborator.
// Implementations are best-effort: callers must treat any error as
// "enrichment unavailable", never as a submission failure.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}
