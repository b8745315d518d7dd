package aictx

import "context"

type ctxKey string

const (
	keyRID    ctxKey = "ai_rid"
	keyItemID ctxKey = "ai_item_id"
)

// WithRID stores a correlation id for AI scoring logs.
func WithRID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, keyRID, rid)
}

// RID returns the correlation id if present.
func RID(ctx context.Context) string {
	v, _ := ctx.Value(keyRID).(string)
	return v
}

// WithItemID stores the item id being scored.
func WithItemID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyItemID, id)
}

// ItemID returns the item id if present.
func ItemID(ctx context.Context) string {
	v, _ := ctx.Value(keyItemID).(string)
	return v
}
