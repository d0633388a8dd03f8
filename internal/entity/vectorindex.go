package entity

// VectorRecord is a single stored vector with its curriculum metadata.
// IDs are content-derived (chunk-{country}-{hash}-{n}) so re-ingestion of the
// same material overwrites rather than duplicates.
type VectorRecord struct {
	ID       string        `json:"id"`
	Values   []float32     `json:"values"`
	Metadata ChunkMetadata `json:"metadata"`
}

type VectorQueryRequest struct {
	Vector          []float32      `json:"vector"`
	TopK            int            `json:"topK"`
	Filter          map[string]any `json:"filter,omitempty"`
	IncludeMetadata bool           `json:"includeMetadata"`
}

type VectorMatch struct {
	ID       string        `json:"id"`
	Score    float64       `json:"score"`
	Metadata ChunkMetadata `json:"metadata"`
}

type VectorQueryResponse struct {
	Matches []VectorMatch `json:"matches"`
}

type VectorIndexStats struct {
	TotalVectorCount int `json:"totalVectorCount"`
	Dimension        int `json:"dimension,omitempty"`
}

type VectorUpsertRequest struct {
	Vectors []VectorRecord `json:"vectors"`
}

type VectorUpsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}

type VectorDeleteRequest struct {
	DeleteAll bool     `json:"deleteAll,omitempty"`
	IDs       []string `json:"ids,omitempty"`
}

// EqFilter builds an exact-match metadata filter clause.
func EqFilter(field, value string) map[string]any {
	return map[string]any{field: map[string]any{"$eq": value}}
}

// AndFilter combines clauses conjunctively.
func AndFilter(clauses ...map[string]any) map[string]any {
	return map[string]any{"$and": clauses}
}
