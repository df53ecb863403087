package creator

import (
	"context"
	"fmt"

	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/media"
)

// SaveKits replaces the draft's kits. files holds one image per kit.
func (s *Service) SaveKits(ctx context.Context, draftID uint, req creator.KitsRequest, files []media.File) error {
	if err := s.validateStruct(req); err != nil {
		return err
	}
	if err := checkFileCount("files", len(files), len(req.Kits)); err != nil {
		return err
	}
	if err := s.checkFiles(files); err != nil {
		return err
	}
	if err := s.requireDraft(ctx, draftID); err != nil {
		return err
	}

	return s.write(ctx, files, func(dbc dbctx.Context, urls []string) error {
		if err := s.touch(dbc, draftID); err != nil {
			return err
		}
		kits := make([]draft.TemporaryKit, len(req.Kits))
		for i, k := range req.Kits {
			kits[i] = draft.TemporaryKit{
				Name:   *k.Name,
				Order:  i + 1,
				Images: []draft.TemporaryKitImage{{ImageURL: urls[i], Order: 1}},
			}
		}
		if err := s.store.ReplaceKits(dbc, draftID, kits); err != nil {
			return fmt.Errorf("replace kits of draft %d: %w", draftID, err)
		}
		return nil
	})
}

func (s *Service) Kits(ctx context.Context, draftID uint) (*creator.Kits, error) {
	if err := s.requireDraft(ctx, draftID); err != nil {
		return nil, err
	}
	kits, err := s.store.ListKits(dbctx.Background(ctx), draftID)
	if err != nil {
		return nil, fmt.Errorf("list kits of draft %d: %w", draftID, err)
	}

	out := &creator.Kits{Kits: make([]creator.Kit, 0, len(kits))}
	for _, k := range kits {
		urls := make([]string, 0, len(k.Images))
		for _, img := range k.Images {
			urls = append(urls, img.ImageURL)
		}
		out.Kits = append(out.Kits, creator.Kit{ID: k.ID, Name: k.Name, ImageURLs: urls})
	}
	return out, nil
}
