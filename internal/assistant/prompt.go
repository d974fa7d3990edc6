package assistant

import "fmt"

// defaultPromptTemplate embeds the original sentence and the assistance
// mapping into the instruction sent to the LLM.
const defaultPromptTemplate = "Translate from Darija to English using the sentence and the following assistance: #SENTENCE: %s. #ASSISTANCE: %s"

// BuildPrompt returns the prompt for the LLM. A non-empty customPrompt is
// used verbatim; otherwise the default template is filled with the sentence
// and the assistance string.
func BuildPrompt(sentence, assistance, customPrompt string) string {
	if customPrompt != "" {
		return customPrompt
	}
	return fmt.Sprintf(defaultPromptTemplate, sentence, assistance)
}
