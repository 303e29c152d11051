package constant

// Pipeline-wide defaults. Embedding dimension and top-K are overridable via
// config; the examples cap is fixed so prompt size stays bounded no matter
// how many usage examples a record carries.
const (
	DefaultEmbeddingDimension = 1536 // text-embedding-3-small
	DefaultRetrievalTopK      = 5
	MaxContextExamples        = 2

	DefaultGenerationTemperature = 0.25
	DefaultGenerationMaxTokens   = 600
)

const (
	PhraseLangEnglish = "en"
	PhraseLangChinese = "zh"
)
