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
	"github.com/clnass/creator-service/internal/types/product"
)

// Promote copies the draft into permanent product records and deletes it,
// all in one transaction. It returns the new product id.
func (s *Service) Promote(ctx context.Context, draftID uint) (uint, error) {
	var productID uint

	err := s.store.Transaction(ctx, func(dbc dbctx.Context) error {
		tree, err := s.store.LoadDraftTree(dbc, draftID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrDraftNotFound
		}
		if err != nil {
			return fmt.Errorf("load draft %d: %w", draftID, err)
		}

		p := buildProduct(tree, s.now())
		if err := s.store.CreateProduct(dbc, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}

		for _, k := range tree.Kits {
			kit := buildKit(k)
			if err := s.store.CreateKit(dbc, kit); err != nil {
				return fmt.Errorf("create kit %q: %w", k.Name, err)
			}
			if err := s.store.LinkProductKit(dbc, p.ID, kit.ID); err != nil {
				return fmt.Errorf("link kit %d: %w", kit.ID, err)
			}
		}

		if err := s.linkDetailCategory(dbc, p.ID, tree.Product.SubCategoryID); err != nil {
			return err
		}

		err = s.store.DeleteDraft(dbc, draftID)
		if errors.Is(err, storage.ErrNotFound) {
			// Promoted concurrently.
			return ErrDraftNotFound
		}
		if err != nil {
			return fmt.Errorf("delete draft %d: %w", draftID, err)
		}

		productID = p.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("draft promoted", slog.Uint64("draft_id", uint64(draftID)), slog.Uint64("product_id", uint64(productID)))
	return productID, nil
}

// linkDetailCategory tags the product with a detail category named after its
// sub-category.
func (s *Service) linkDetailCategory(dbc dbctx.Context, productID, subCategoryID uint) error {
	sub, err := s.store.GetSubCategory(dbc, subCategoryID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get sub category %d: %w", subCategoryID, err)
	}

	detail, err := s.store.EnsureDetailCategory(dbc, sub.Name)
	if err != nil {
		return fmt.Errorf("ensure detail category %q: %w", sub.Name, err)
	}
	if err := s.store.LinkProductDetailCategory(dbc, productID, detail.ID); err != nil {
		return fmt.Errorf("link detail category %d: %w", detail.ID, err)
	}
	return nil
}

func buildProduct(tree *draft.Tree, now time.Time) *product.Product {
	src := tree.Product

	p := &product.Product{
		UserID:         src.UserID,
		MainCategoryID: src.MainCategoryID,
		SubCategoryID:  src.SubCategoryID,
		DifficultyID:   src.DifficultyID,
		Name:           src.Name,
		Price:          src.Price,
		Sale:           src.Sale,
		StartDate:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		SubImages:      make([]product.ProductSubImage, 0, len(src.Images)),
		Chapters:       make([]product.Chapter, 0, len(tree.Chapters)),
	}
	if len(src.Images) > 0 {
		p.ThumbnailImage = src.Images[0].ImageURL
	}
	for _, img := range src.Images {
		p.SubImages = append(p.SubImages, product.ProductSubImage{ImageURL: img.ImageURL})
	}

	for _, c := range tree.Chapters {
		chapter := product.Chapter{
			Name:           c.Name,
			Order:          c.Order,
			ThumbnailImage: c.ThumbnailImage,
			Lectures:       make([]product.Lecture, 0, len(c.Lectures)),
		}
		for _, l := range c.Lectures {
			lecture := product.Lecture{
				Name:     l.Name,
				Order:    l.Order,
				Video:    &product.LectureVideo{VideoURL: l.VideoURL},
				Contents: make([]product.LectureContent, 0, len(l.Contents)),
			}
			for _, item := range l.Contents {
				lecture.Contents = append(lecture.Contents, product.LectureContent{
					Order:       item.Order,
					Description: item.Description,
					ImageURL:    item.ImageURL,
				})
			}
			chapter.Lectures = append(chapter.Lectures, lecture)
		}
		p.Chapters = append(p.Chapters, chapter)
	}
	return p
}

func buildKit(k draft.TemporaryKit) *product.Kit {
	kit := &product.Kit{Name: k.Name, Images: make([]product.KitImage, 0, len(k.Images))}
	for _, img := range k.Images {
		kit.Images = append(kit.Images, product.KitImage{ImageURL: img.ImageURL})
	}
	return kit
}
