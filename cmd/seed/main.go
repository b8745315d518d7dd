package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/foundly-app/foundly-backend/internal/config"
	"github.com/foundly-app/foundly-backend/internal/db"
	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"github.com/foundly-app/foundly-backend/internal/service"
	"github.com/joho/godotenv"
)

type seedReport struct {
	Type        model.ItemType
	Title       string
	Description string
	Location    string
	Reporter    string
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(
		&model.Item{},
		&model.Match{},
		&model.Notification{},
		&model.ChatMessage{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := gdb.Model(&model.Item{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if count > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Printf("items already present (%d), skipping seed", count)
		return nil
	}

	itemRepo := repository.NewItemRepository(gdb)
	matchRepo := repository.NewMatchRepository(gdb)
	notifRepo := repository.NewNotificationRepository(gdb)
	notifSvc := service.NewNotificationService(notifRepo)

	reports := []seedReport{
		{model.ItemTypeLost, "Black leather wallet", "Lost near the central station, contains a transit card.", "Central Station", "demo-user-1"},
		{model.ItemTypeFound, "Black wallet", "Found a black leather wallet on platform 2.", "Central Station, platform 2", "demo-user-2"},
		{model.ItemTypeLost, "Blue umbrella", "Left a navy folding umbrella on the 14:05 bus.", "Bus line 12", "demo-user-3"},
	}

	items := make([]*model.Item, 0, len(reports))
	for _, r := range reports {
		item := &model.Item{
			Type:        r.Type,
			Title:       r.Title,
			Description: r.Description,
			Location:    r.Location,
			ReporterUID: r.Reporter,
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("create item %q: %w", r.Title, err)
		}
		items = append(items, item)
	}

	m := &model.Match{
		UserID1: items[0].ReporterUID,
		UserID2: items[1].ReporterUID,
		Item1ID: items[0].ID,
		Item2ID: items[1].ID,
	}
	if err := matchRepo.Create(ctx, m); err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	for _, uid := range []string{m.UserID1, m.UserID2} {
		notifSvc.Notify(ctx, &model.Notification{
			UserID:  uid,
			MatchID: m.ID,
			Type:    "match_suggested",
			Title:   "Possible match found",
			Body:    "A wallet report that may match yours was found. Open the match to review it.",
			Item1ID: &m.Item1ID,
			Item2ID: &m.Item2ID,
		})
	}

	log.Printf("seeded %d items, 1 match", len(items))
	return nil
}
