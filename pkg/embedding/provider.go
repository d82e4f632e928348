package embedding

// Dimensions of the embedding vectors stored in pgvector columns.
const Dimensions = 1536

type EmbeddingResponse struct {
	Values []float32
}

// EmbeddingProvider generates text embeddings for archive search.
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
}
