package creator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/media"
)

// Error values double as the message returned to clients.
var (
	ErrKey             = errors.New("KEY_ERROR")
	ErrInvalidValue    = errors.New("INVALID_VALUE")
	ErrUnsupportedFile = errors.New("UNSUPPORTED_FILE")
	ErrJSON            = errors.New("JSON_DECODE_ERROR")
	ErrDraftNotFound   = errors.New("TEMPORARY_PRODUCT_DOES_NOT_EXIST")
	ErrLectureNotFound = errors.New("TEMPORARY_LECTURE_DOES_NOT_EXIST")
)

// LookupError reports a catalog name that matched no row.
type LookupError struct {
	Entity string
}

func (e *LookupError) Error() string {
	return e.Entity + " matching query does not exist."
}

// Uploader pushes files to object storage.
type Uploader interface {
	Check(f media.File) error
	Upload(ctx context.Context, f media.File) (string, error)
	Remove(ctx context.Context, url string) error
}

// CatalogReader supplies the category and difficulty tree shown in stage 1.
type CatalogReader interface {
	Catalog(ctx context.Context) (creator.Catalog, error)
}

type Service struct {
	store    storage.Storage
	uploader Uploader
	catalog  CatalogReader
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

// New wires a Service. A nil catalog reads straight from store.
func New(store storage.Storage, uploader Uploader, catalog CatalogReader, log *slog.Logger) *Service {
	if catalog == nil {
		catalog = StoreCatalog{Store: store}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:    store,
		uploader: uploader,
		catalog:  catalog,
		validate: validator.New(),
		log:      log.With(slog.String("service", "creator")),
		now:      time.Now,
	}
}

// StoreCatalog reads the catalog directly from the database.
type StoreCatalog struct {
	Store storage.Storage
}

func (c StoreCatalog) Catalog(ctx context.Context) (creator.Catalog, error) {
	dbc := dbctx.Background(ctx)

	mains, err := c.Store.ListMainCategories(dbc)
	if err != nil {
		return creator.Catalog{}, fmt.Errorf("list main categories: %w", err)
	}
	diffs, err := c.Store.ListDifficulties(dbc)
	if err != nil {
		return creator.Catalog{}, fmt.Errorf("list difficulties: %w", err)
	}

	out := creator.Catalog{
		Categories:   make([]creator.Category, 0, len(mains)),
		Difficulties: make([]creator.Difficulty, 0, len(diffs)),
	}
	for _, m := range mains {
		cat := creator.Category{ID: m.ID, Name: m.Name, SubCategories: make([]creator.SubCategory, 0, len(m.SubCategories))}
		for _, s := range m.SubCategories {
			cat.SubCategories = append(cat.SubCategories, creator.SubCategory{ID: s.ID, Name: s.Name})
		}
		out.Categories = append(out.Categories, cat)
	}
	for _, d := range diffs {
		out.Difficulties = append(out.Difficulties, creator.Difficulty{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// requireDraft maps a missing draft to ErrDraftNotFound.
func (s *Service) requireDraft(ctx context.Context, draftID uint) error {
	_, err := s.store.GetDraft(dbctx.Background(ctx), draftID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrDraftNotFound
	}
	if err != nil {
		return fmt.Errorf("get draft %d: %w", draftID, err)
	}
	return nil
}

// write uploads files in order, then runs fn in a transaction with the
// resulting URLs. Objects uploaded for a failed write are removed.
func (s *Service) write(ctx context.Context, files []media.File, fn func(dbc dbctx.Context, urls []string) error) error {
	urls, err := s.uploadAll(ctx, files)
	if err != nil {
		return err
	}

	err = s.store.Transaction(ctx, func(dbc dbctx.Context) error {
		return fn(dbc, urls)
	})
	if err != nil {
		s.discard(urls)
		return err
	}
	return nil
}

func (s *Service) uploadAll(ctx context.Context, files []media.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.uploader.Upload(ctx, f)
		if err != nil {
			s.discard(urls)
			return nil, fmt.Errorf("upload %s: %w", f.Name, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *Service) discard(urls []string) {
	for _, url := range urls {
		// Request context may already be cancelled.
		if err := s.uploader.Remove(context.Background(), url); err != nil {
			s.log.Warn("failed to remove orphaned object", slog.String("url", url), slog.String("error", err.Error()))
		}
	}
}
