package ai

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/foundly-app/foundly-backend/internal/aictx"
	"github.com/foundly-app/foundly-backend/internal/model"
	"google.golang.org/genai"
)

type SimilarityClient struct {
	model string
}

func NewSimilarityClient() *SimilarityClient {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &SimilarityClient{model: model}
}

// Score asks Gemini how likely two reports describe the same object and
// returns a value in [0,100].
func (c *SimilarityClient) Score(ctx context.Context, a, b *model.Item) (float64, error) {
	rid := aictx.RID(ctx)
	itemID := aictx.ItemID(ctx)
	start := time.Now()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("[match-ai] rid=%s item=%s stage=client_init err=%v", rid, itemID, err)
		return 0, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(BuildSimilarityPrompt(a, b)),
		}, genai.RoleUser),
	}
	temp := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	res, err := client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		log.Printf("[match-ai] rid=%s item=%s stage=gemini_fail model=%s err=%v", rid, itemID, c.model, err)
		return 0, fmt.Errorf("gemini generate: %w", err)
	}

	rawText := res.Text()
	val, err := ParseScore(rawText)
	if err != nil {
		log.Printf("[match-ai] rid=%s item=%s stage=parse_fail len=%d err=%v", rid, itemID, len(rawText), err)
		return 0, err
	}
	if val < 0 {
		val = 0
	}
	if val > 100 {
		val = 100
	}
	log.Printf("[match-ai] rid=%s item=%s stage=score_ok value=%.1f totalMs=%d", rid, itemID, val, time.Since(start).Milliseconds())
	return val, nil
}
