package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/foundly-app/foundly-backend/internal/model"
	"github.com/foundly-app/foundly-backend/internal/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// PhotoUploader stores a photo and returns its public URL.
type PhotoUploader interface {
	Upload(ctx context.Context, object, contentType string, r io.Reader) (string, error)
}

type ItemService interface {
	Create(ctx context.Context, typ, title, description, location string, imageURL *string, reporterUID string) (*model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	List(ctx context.Context, limit, offset int, typ string, includeResolved bool) ([]model.Item, int64, error)
	ListByReporter(ctx context.Context, reporterUID string) ([]model.Item, error)
	AttachPhoto(ctx context.Context, id, contentType string, photo io.Reader) (string, error)
}

type itemService struct {
	repo     repository.ItemRepository
	uploader PhotoUploader
}

func NewItemService(repo repository.ItemRepository, uploader PhotoUploader) ItemService {
	return &itemService{repo: repo, uploader: uploader}
}

func (s *itemService) Create(ctx context.Context, typ, title, description, location string, imageURL *string, reporterUID string) (*model.Item, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)
	if typ != string(model.ItemTypeLost) && typ != string(model.ItemTypeFound) {
		return nil, errors.New("type must be lost or found")
	}
	if title == "" || len(title) > 120 {
		return nil, errors.New("invalid title")
	}
	if description == "" {
		return nil, errors.New("invalid description")
	}
	if imageURL != nil && strings.HasPrefix(strings.TrimSpace(*imageURL), "data:") {
		return nil, errors.New("imageUrl must be a URL, not data URI")
	}

	item := &model.Item{
		Type:        model.ItemType(typ),
		Title:       title,
		Description: description,
		Location:    location,
		ImageURL:    imageURL,
		ReporterUID: reporterUID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, limit, offset int, typ string, includeResolved bool) ([]model.Item, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, limit, offset, strings.TrimSpace(typ), includeResolved)
}

func (s *itemService) ListByReporter(ctx context.Context, reporterUID string) ([]model.Item, error) {
	return s.repo.ListByReporter(ctx, reporterUID)
}

// AttachPhoto uploads the photo and stores its URL on the item.
func (s *itemService) AttachPhoto(ctx context.Context, id, contentType string, photo io.Reader) (string, error) {
	if s.uploader == nil {
		return "", errors.New("photo storage is not configured")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	ext := "jpg"
	if strings.HasSuffix(contentType, "png") {
		ext = "png"
	}
	object := fmt.Sprintf("items/%s.%s", item.ID, ext)
	url, err := s.uploader.Upload(ctx, object, contentType, photo)
	if err != nil {
		return "", err
	}
	if err := s.repo.UpdateImageURL(ctx, item.ID, url); err != nil {
		return "", err
	}
	return url, nil
}
