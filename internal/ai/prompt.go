package ai

import (
	"fmt"

	"github.com/foundly-app/foundly-backend/internal/model"
)

const similarityPrompt = `You are a matcher for a lost-and-found service.
You get two reports: one for a lost belonging and one for a found belonging.
Judge how likely they describe the same physical object, using the titles,
descriptions, and locations.

Answer with a single similarity score between 0 and 100, wrapped in dollar
signs, e.g. $85$. 0 means certainly different objects, 100 means certainly
the same object. Output nothing else: no explanation, no units, no newlines.`

// BuildSimilarityPrompt renders the two reports into the scoring prompt.
func BuildSimilarityPrompt(a, b *model.Item) string {
	return fmt.Sprintf(`%s

Report A (%s):
Title: %s
Description: %s
Location: %s

Report B (%s):
Title: %s
Description: %s
Location: %s`,
		similarityPrompt,
		a.Type, a.Title, a.Description, a.Location,
		b.Type, b.Title, b.Description, b.Location)
}
