package gemini

import "google.golang.org/genai"

// Fixed generation parameters sent with every request.
const (
	Temperature     float32 = 0.7
	TopK            float32 = 1
	TopP            float32 = 1
	MaxOutputTokens int32   = 1024
)

// GenerateContentRequest is the generateContent request envelope.
type GenerateContentRequest struct {
	Contents         []*genai.Content        `json:"contents"`
	GenerationConfig *genai.GenerationConfig `json:"generationConfig"`
}

// NewGenerateContentRequest wraps a rendered prompt in a single-part, role-less content block
// with the fixed generation parameters.
func NewGenerateContentRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []*genai.Content{
			{Parts: []*genai.Part{{Text: prompt}}},
		},
		GenerationConfig: &genai.GenerationConfig{
			Temperature:     genai.Ptr(Temperature),
			TopK:            genai.Ptr(TopK),
			TopP:            genai.Ptr(TopP),
			MaxOutputTokens: MaxOutputTokens,
		},
	}
}
