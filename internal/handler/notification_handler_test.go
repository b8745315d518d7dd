package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	listByUser      func(ctx context.Context, userID string) ([]model.Notification, error)
	get             func(ctx context.Context, id string) (*model.Notification, error)
	delete          func(ctx context.Context, id string) error
	markRead        func(ctx context.Context, id string) (*model.Notification, error)
	markAllRead     func(ctx context.Context, userID string) (int64, error)
	deleteAllByUser func(ctx context.Context, userID string) (int64, error)
}

func (s *stubNotificationService) Notify(ctx context.Context, n *model.Notification) {}

func (s *stubNotificationService) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	return s.listByUser(ctx, userID)
}

func (s *stubNotificationService) Get(ctx context.Context, id string) (*model.Notification, error) {
	return s.get(ctx, id)
}

func (s *stubNotificationService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

func (s *stubNotificationService) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	return s.markRead(ctx, id)
}

func (s *stubNotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	return s.markAllRead(ctx, userID)
}

func (s *stubNotificationService) DeleteAllByUser(ctx context.Context, userID string) (int64, error) {
	return s.deleteAllByUser(ctx, userID)
}

func TestListNotificationsRequiresUserID(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})
	c, rec := newTestContext(http.MethodGet, "/api/notifications", "")

	require.NoError(t, h.ListByUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := decodeBody(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "User ID is required", errObj["message"])
}

func TestListNotifications(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		listByUser: func(ctx context.Context, userID string) ([]model.Notification, error) {
			return []model.Notification{{ID: "n1", UserID: userID, Type: "match_suggested"}}, nil
		},
	})
	c, rec := newTestContext(http.MethodGet, "/api/notifications?userId=alice", "")

	require.NoError(t, h.ListByUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "n1", first["id"])
}

func TestGetNotificationNotFound(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		get: func(ctx context.Context, id string) (*model.Notification, error) {
			return nil, service.ErrNotFound
		},
	})
	c, rec := newTestContext(http.MethodGet, "/api/notifications/n1", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errObj := decodeBody(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "Notification not found", errObj["message"])
}

func TestDeleteNotification(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		delete: func(ctx context.Context, id string) error { return nil },
	})
	c, rec := newTestContext(http.MethodDelete, "/api/notifications/n1", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Notification deleted successfully", decodeBody(t, rec)["message"])
}

func TestMarkRead(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		markRead: func(ctx context.Context, id string) (*model.Notification, error) {
			return &model.Notification{ID: id, IsRead: true}, nil
		},
	})
	c, rec := newTestContext(http.MethodPatch, "/api/notifications/n1/read", "")
	c.SetParamNames("id")
	c.SetParamValues("n1")

	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["isRead"])
}

func TestMarkAllRead(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		markAllRead: func(ctx context.Context, userID string) (int64, error) { return 3, nil },
	})
	c, rec := newTestContext(http.MethodPatch, "/api/notifications/read-all", `{"userId":"alice"}`)

	require.NoError(t, h.MarkAllRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "All notifications marked as read", body["message"])
	assert.EqualValues(t, 3, body["modifiedCount"])
}

func TestMarkAllReadRequiresUserID(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{})
	c, rec := newTestContext(http.MethodPatch, "/api/notifications/read-all", `{}`)

	require.NoError(t, h.MarkAllRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAllByUser(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{
		deleteAllByUser: func(ctx context.Context, userID string) (int64, error) { return 2, nil },
	})
	c, rec := newTestContext(http.MethodDelete, "/api/notifications", `{"userId":"alice"}`)

	require.NoError(t, h.DeleteAllByUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All notifications deleted successfully", decodeBody(t, rec)["message"])
}
