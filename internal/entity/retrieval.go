package entity

// RetrievalStatus classifies the outcome of a retrieval call. Every failure
// mode maps to a status; retrieval never returns a Go error to its caller.
type RetrievalStatus string

const (
	// RetrievalStatusValid - context assembled from at least one match
	RetrievalStatusValid RetrievalStatus = "valid"
	// RetrievalStatusInvalid - query well-formed but nothing survived
	// grade and topic filtering
	RetrievalStatusInvalid RetrievalStatus = "invalid"
	// RetrievalStatusError - empty index, malformed query, or upstream failure
	RetrievalStatusError RetrievalStatus = "error"
)

// RetrievalQuery is the ephemeral per-request search input. Consumed once, never persisted.
type RetrievalQuery struct {
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	Topic      string `json:"topic"`
	Country    string `json:"country"`
}

// ChunkMetadata is the metadata stored alongside every curriculum vector.
type ChunkMetadata struct {
	Content      string   `json:"content"`
	Subject      string   `json:"subject"`
	GradeLevel   string   `json:"grade_level"`
	Country      string   `json:"country"`
	Source       string   `json:"source,omitempty"`
	Page         int      `json:"page,omitempty"`
	DocumentType string   `json:"document_type,omitempty"`
	Topics       []string `json:"topics,omitempty"`
	ChunkIndex   int      `json:"chunk_index"`
}

// RetrievalMatch is a single surviving candidate, ordered by
// (topic relevance, similarity score) descending.
type RetrievalMatch struct {
	ID             string        `json:"id"`
	Score          float64       `json:"score"`
	TopicRelevance int           `json:"topic_relevance"`
	Metadata       ChunkMetadata `json:"metadata"`
}

type RetrievalResult struct {
	Status  RetrievalStatus  `json:"status"`
	Message string           `json:"message,omitempty"`
	Context string           `json:"context,omitempty"`
	Matches []RetrievalMatch `json:"matches,omitempty"`
	// Alternatives is a hook for "did you mean" suggestions; currently
	// always empty on invalid results.
	Alternatives []string `json:"alternatives"`
}
