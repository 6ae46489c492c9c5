package chat

import "fmt"

// SystemInstruction is prepended by the client adapter to every conversation.
const SystemInstruction = `You are Shark AI, a marine data assistant. Always format your answers in a clear, structured way using Markdown.
- Use bullet points with a hyphen (-) for lists.
- Use indented plus signs (  +) for sub-bullets.
- Use numbered lists (1., 2.) when order matters.
- Use bold text ('**text**') for headings or key terms.
- When presenting tabular data, use Markdown tables, like this:
| Species         | Family      | Confidence |
| --------------- | ----------- | ---------- |
| Gadus morhua    | Gadidae     | 94%        |
| Salmo salar     | Salmonidae  | 89%        |
`

// Prompt templates used by the single-message helpers.
const (
	marineDataTemplate      = "Analyze this %s: %s"
	speciesTemplate         = "Identify species: %s"
	ednaTemplate            = "Interpret eDNA: %s"
	oceanConditionsTemplate = "Analyze ocean conditions: %s"
)

// MarineDataPrompt asks for an analysis of a named kind of marine data.
func MarineDataPrompt(dataType, query string) string {
	return fmt.Sprintf(marineDataTemplate, dataType, query)
}

// SpeciesPrompt asks for a species identification from a description.
func SpeciesPrompt(description string) string {
	return fmt.Sprintf(speciesTemplate, description)
}

// EDNAPrompt asks for an interpretation of environmental DNA sample data.
func EDNAPrompt(sampleData string) string {
	return fmt.Sprintf(ednaTemplate, sampleData)
}

// OceanConditionsPrompt asks for an analysis of ocean conditions.
func OceanConditionsPrompt(conditions string) string {
	return fmt.Sprintf(oceanConditionsTemplate, conditions)
}
