package service

import (
	"context"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memDB is an in-memory stand-in for the four tables, shared by the fake
// repositories so cross-entity cascades behave like the real thing.
type memDB struct {
	items   map[string]*model.Item
	matches map[string]*model.Match
	notifs  map[string]*model.Notification
	chats   map[string]*model.ChatMessage
}

func newMemDB() *memDB {
	return &memDB{
		items:   map[string]*model.Item{},
		matches: map[string]*model.Match{},
		notifs:  map[string]*model.Notification{},
		chats:   map[string]*model.ChatMessage{},
	}
}

func (db *memDB) addItem(item *model.Item) *model.Item {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	db.items[item.ID] = item
	return item
}

func (db *memDB) addMatch(m *model.Match) *model.Match {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	db.matches[m.ID] = m
	return m
}

func (db *memDB) addNotif(n *model.Notification) *model.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	db.notifs[n.ID] = n
	return n
}

func (db *memDB) addChat(msg *model.ChatMessage) *model.ChatMessage {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	db.chats[msg.ID] = msg
	return msg
}

func pairMatches(item1, item2, a, b string) bool {
	return a == item1 || b == item2 || a == item2 || b == item1
}

type fakeItemRepo struct {
	db *memDB
}

func (r *fakeItemRepo) Create(ctx context.Context, item *model.Item) error {
	r.db.addItem(item)
	return nil
}

func (r *fakeItemRepo) FindByID(ctx context.Context, id string) (*model.Item, error) {
	item, ok := r.db.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeItemRepo) List(ctx context.Context, limit, offset int, typ string, includeResolved bool) ([]model.Item, int64, error) {
	var out []model.Item
	for _, item := range r.db.items {
		if typ != "" && string(item.Type) != typ {
			continue
		}
		if !includeResolved && item.IsResolved {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeItemRepo) ListByReporter(ctx context.Context, reporterUID string) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.db.items {
		if item.ReporterUID == reporterUID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) ListOpenByType(ctx context.Context, typ model.ItemType, excludeReporter string, limit int) ([]model.Item, error) {
	var out []model.Item
	for _, item := range r.db.items {
		if item.Type != typ || item.IsResolved {
			continue
		}
		if excludeReporter != "" && item.ReporterUID == excludeReporter {
			continue
		}
		out = append(out, *item)
	}
	return out, nil
}

func (r *fakeItemRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	item, ok := r.db.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.ImageURL = &imageURL
	return nil
}

func (r *fakeItemRepo) SetDB(db *gorm.DB) {}

type fakeMatchRepo struct {
	db *memDB
	// forceZeroRows makes SetConfirmed report a lost race.
	forceZeroRows bool
}

func (r *fakeMatchRepo) Create(ctx context.Context, m *model.Match) error {
	r.db.addMatch(m)
	return nil
}

func (r *fakeMatchRepo) FindByID(ctx context.Context, id string) (*model.Match, error) {
	m, ok := r.db.matches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMatchRepo) FindByUser(ctx context.Context, uid string) ([]model.Match, error) {
	var out []model.Match
	for _, m := range r.db.matches {
		if m.UserID1 == uid || m.UserID2 == uid {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) SetConfirmed(ctx context.Context, id string, user1 bool) (int64, error) {
	if r.forceZeroRows {
		return 0, nil
	}
	m, ok := r.db.matches[id]
	if !ok {
		return 0, nil
	}
	if user1 {
		if m.User1Confirmed {
			return 0, nil
		}
		m.User1Confirmed = true
	} else {
		if m.User2Confirmed {
			return 0, nil
		}
		m.User2Confirmed = true
	}
	return 1, nil
}

func (r *fakeMatchRepo) DeleteWithNotifications(ctx context.Context, id string) error {
	for nid, n := range r.db.notifs {
		if n.MatchID == id {
			delete(r.db.notifs, nid)
		}
	}
	delete(r.db.matches, id)
	return nil
}

func (r *fakeMatchRepo) FinalizeConfirmed(ctx context.Context, m *model.Match) error {
	if item, ok := r.db.items[m.Item1ID]; ok {
		item.IsResolved = true
	}
	if item, ok := r.db.items[m.Item2ID]; ok {
		item.IsResolved = true
	}
	for id, n := range r.db.notifs {
		if n.MatchID == m.ID {
			delete(r.db.notifs, id)
		}
	}
	for id, msg := range r.db.chats {
		if msg.MatchID == m.ID {
			delete(r.db.chats, id)
		}
	}
	delete(r.db.matches, m.ID)
	for id, other := range r.db.matches {
		if pairMatches(m.Item1ID, m.Item2ID, other.Item1ID, other.Item2ID) {
			delete(r.db.matches, id)
		}
	}
	for id, n := range r.db.notifs {
		var a, b string
		if n.Item1ID != nil {
			a = *n.Item1ID
		}
		if n.Item2ID != nil {
			b = *n.Item2ID
		}
		if pairMatches(m.Item1ID, m.Item2ID, a, b) {
			delete(r.db.notifs, id)
		}
	}
	return nil
}

func (r *fakeMatchRepo) SetDB(db *gorm.DB) {}

type fakeNotifRepo struct {
	db *memDB
}

func (r *fakeNotifRepo) Create(ctx context.Context, n *model.Notification) error {
	r.db.addNotif(n)
	return nil
}

func (r *fakeNotifRepo) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	n, ok := r.db.notifs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotifRepo) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range r.db.notifs {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotifRepo) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	n, ok := r.db.notifs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	n.IsRead = true
	cp := *n
	return &cp, nil
}

func (r *fakeNotifRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, n := range r.db.notifs {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			count++
		}
	}
	return count, nil
}

func (r *fakeNotifRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	if _, ok := r.db.notifs[id]; !ok {
		return 0, nil
	}
	delete(r.db.notifs, id)
	return 1, nil
}

func (r *fakeNotifRepo) DeleteByMatch(ctx context.Context, matchID string) error {
	for id, n := range r.db.notifs {
		if n.MatchID == matchID {
			delete(r.db.notifs, id)
		}
	}
	return nil
}

func (r *fakeNotifRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for id, n := range r.db.notifs {
		if n.UserID == userID {
			delete(r.db.notifs, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeNotifRepo) SetDB(db *gorm.DB) {}

type fakeChatRepo struct {
	db *memDB
}

func (r *fakeChatRepo) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	r.db.addChat(msg)
	return nil
}

func (r *fakeChatRepo) ListByMatch(ctx context.Context, matchID string) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, msg := range r.db.chats {
		if msg.MatchID == matchID {
			out = append(out, *msg)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) SetDB(db *gorm.DB) {}
