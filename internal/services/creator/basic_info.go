package creator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/media"
)

// SaveBasicInfo creates the draft or overwrites its basic information and
// image list.
func (s *Service) SaveBasicInfo(ctx context.Context, draftID uint, req creator.BasicInfoRequest, files []media.File) error {
	if err := s.validateStruct(req); err != nil {
		return err
	}
	if err := s.checkFiles(files); err != nil {
		return err
	}

	dbc := dbctx.Background(ctx)
	mainCategory, err := s.store.FindMainCategoryByName(dbc, *req.CategoryName)
	if err != nil {
		return lookup(err, "MainCategory")
	}
	subCategory, err := s.store.FindSubCategoryByName(dbc, *req.SubCategoryName)
	if err != nil {
		return lookup(err, "SubCategory")
	}
	difficulty, err := s.store.FindDifficultyByName(dbc, *req.DifficultyName)
	if err != nil {
		return lookup(err, "Difficulty")
	}

	var sale float64
	if req.Sale != nil {
		sale = roundSale(*req.Sale)
	}

	return s.write(ctx, files, func(dbc dbctx.Context, urls []string) error {
		images := make([]draft.TemporaryProductImage, len(urls))
		for i, url := range urls {
			images[i] = draft.TemporaryProductImage{ImageURL: url, Order: i + 1}
		}
		row := &draft.TemporaryProduct{
			ID:             draftID,
			UserID:         *req.UserID,
			MainCategoryID: mainCategory.ID,
			SubCategoryID:  subCategory.ID,
			DifficultyID:   difficulty.ID,
			Name:           *req.Name,
			Price:          *req.Price,
			Sale:           sale,
			Images:         images,
		}
		if err := s.store.UpsertDraft(dbc, row); err != nil {
			return fmt.Errorf("upsert draft %d: %w", draftID, err)
		}
		return nil
	})
}

// BasicInfo returns the catalog together with the draft's stage-1 data.
func (s *Service) BasicInfo(ctx context.Context, draftID uint) (*creator.BasicInfo, error) {
	row, err := s.store.GetDraft(dbctx.Background(ctx), draftID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft %d: %w", draftID, err)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	images := make([]string, 0, len(row.Images))
	for _, img := range row.Images {
		images = append(images, img.ImageURL)
	}

	return &creator.BasicInfo{
		Catalog: catalog,
		TemporaryInformation: creator.TemporaryInformation{
			MainCategoryID: row.MainCategoryID,
			SubCategoryID:  row.SubCategoryID,
			DifficultyID:   row.DifficultyID,
			Name:           row.Name,
			Price:          row.Price,
			Sale:           FormatSale(row.Sale),
			Images:         images,
		},
	}, nil
}

// FormatSale renders a discount rate with two decimals, e.g. 0.35.
func FormatSale(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// roundSale matches the numeric(3,2) column.
func roundSale(v float64) float64 {
	return math.Round(v*100) / 100
}
