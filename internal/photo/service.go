package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peershare/sharing-backend/internal/item"
	"github.com/peershare/sharing-backend/internal/pkg/storage"
)

// ItemCatalog is the slice of the item service the photo service needs.
type ItemCatalog interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
}

type Service interface {
	Upload(ctx context.Context, itemID, callerID string, header *multipart.FileHeader) (*Photo, error)
	ListByItem(ctx context.Context, itemID string) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id, callerID string) error
}

type service struct {
	repo    Repository
	items   ItemCatalog
	storage storage.Storage
}

func NewService(repo Repository, items ItemCatalog, store storage.Storage) Service {
	return &service{
		repo:    repo,
		items:   items,
		storage: store,
	}
}

func (s *service) Upload(ctx context.Context, itemID, callerID string, header *multipart.FileHeader) (*Photo, error) {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != callerID {
		return nil, ErrNotOwner
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content so it can be read twice (original + thumbnail).
	// Uploads are images, so keeping them in memory is acceptable.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	photoID := uuid.New().String()

	// Sharding path: upload/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("upload/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := storage.Thumbnail(bytes.NewReader(fileBytes), 200, 200)
	if err == nil {
		tPath := fmt.Sprintf("upload/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}
	// A failed thumbnail does not fail the upload.

	p := &Photo{
		ID:            photoID,
		ItemID:        itemID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Cleanup storage if the DB insert fails.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByItem(ctx context.Context, itemID string) ([]*Photo, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.ListByItem(ctx, itemID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id, callerID string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	it, err := s.items.GetByID(ctx, p.ItemID)
	if err != nil {
		return err
	}
	if it.OwnerID != callerID {
		return ErrNotOwner
	}

	// Best effort cleanup of the blobs before removing the record.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
