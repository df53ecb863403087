package creator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/draft"
)

// SweepStaleDrafts deletes every draft last edited before cutoff, one
// transaction per draft, and removes the objects the draft referenced.
// Each draft is rechecked against cutoff under a row lock before deletion.
// It returns how many drafts were deleted.
func (s *Service) SweepStaleDrafts(ctx context.Context, cutoff time.Time) (int, error) {
	ids, err := s.store.ListStaleDrafts(dbctx.Background(ctx), cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale drafts: %w", err)
	}

	removed := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		var urls []string
		err := s.store.Transaction(ctx, func(dbc dbctx.Context) error {
			// Edited since it was listed.
			if err := s.store.LockStaleDraft(dbc, id, cutoff); err != nil {
				return err
			}
			tree, err := s.store.LoadDraftTree(dbc, id)
			if err != nil {
				return err
			}
			urls = draftURLs(tree)
			return s.store.DeleteDraft(dbc, id)
		})
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("delete draft %d: %w", id, err)
		}

		s.discard(urls)
		removed++
		s.log.Debug("stale draft deleted", slog.Uint64("draft_id", uint64(id)), slog.Int("objects", len(urls)))
	}
	return removed, nil
}

func draftURLs(tree *draft.Tree) []string {
	var urls []string
	for _, img := range tree.Product.Images {
		urls = append(urls, img.ImageURL)
	}
	for _, c := range tree.Chapters {
		if c.ThumbnailImage != "" {
			urls = append(urls, c.ThumbnailImage)
		}
		for _, l := range c.Lectures {
			if l.VideoURL != nil {
				urls = append(urls, *l.VideoURL)
			}
			for _, item := range l.Contents {
				urls = append(urls, item.ImageURL)
			}
		}
	}
	for _, k := range tree.Kits {
		for _, img := range k.Images {
			urls = append(urls, img.ImageURL)
		}
	}
	return urls
}
