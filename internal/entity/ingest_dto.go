package entity

// IngestChunksRequest carries pre-chunked curriculum text with its
// document-level metadata. Chunking and PDF extraction happen upstream.
type IngestChunksRequest struct {
	Country    string   `json:"country,omitempty"`
	Subject    string   `json:"subject"`
	GradeLevel string   `json:"grade_level"`
	Source     string   `json:"source,omitempty"`
	// Pages aligns with Chunks and records the source page each chunk came
	// from. Optional; when present it must have one entry per chunk.
	Pages  []int    `json:"pages,omitempty"`
	Topics []string `json:"topics,omitempty"`
	// GradeTopics maps a grade level to topics that identify it inside a
	// chunk, refining the document-level grade on a per-chunk basis.
	GradeTopics map[string][]string `json:"grade_topics,omitempty"`
	Chunks      []string            `json:"chunks"`
}

type IngestChunksResponse struct {
	Status       string `json:"status"`
	ChunksStored int    `json:"chunks_stored"`
}

type IndexStatsResponse struct {
	TotalVectors int `json:"total_vectors"`
}

type ClearIndexResponse struct {
	Status string `json:"status"`
}
