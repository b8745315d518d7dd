package service

import (
	"context"
	"testing"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatServicePostAndList(t *testing.T) {
	db := newMemDB()
	m := db.addMatch(&model.Match{UserID1: "alice", UserID2: "bob"})
	svc := NewChatService(&fakeChatRepo{db: db}, &fakeMatchRepo{db: db})

	msg, err := svc.PostMessage(context.Background(), m.ID, "alice", "is this yours?")
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.SenderUID)

	list, err := svc.ListMessages(context.Background(), m.ID, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "is this yours?", list[0].Body)
}

func TestChatServiceAccessChecks(t *testing.T) {
	db := newMemDB()
	m := db.addMatch(&model.Match{UserID1: "alice", UserID2: "bob"})
	svc := NewChatService(&fakeChatRepo{db: db}, &fakeMatchRepo{db: db})

	_, err := svc.PostMessage(context.Background(), m.ID, "mallory", "hi")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListMessages(context.Background(), "missing", "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.PostMessage(context.Background(), m.ID, "alice", "")
	assert.Error(t, err)
}
