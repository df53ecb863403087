package storage

import (
	"context"
	"errors"
	"time"

	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/product"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	// Transaction runs fn inside a single database transaction. fn must use
	// the Context it receives for every store call.
	Transaction(ctx context.Context, fn func(dbc dbctx.Context) error) error

	ListMainCategories(dbc dbctx.Context) ([]product.MainCategory, error)
	ListDifficulties(dbc dbctx.Context) ([]product.Difficulty, error)
	FindMainCategoryByName(dbc dbctx.Context, name string) (*product.MainCategory, error)
	FindSubCategoryByName(dbc dbctx.Context, name string) (*product.SubCategory, error)
	GetSubCategory(dbc dbctx.Context, id uint) (*product.SubCategory, error)
	FindDifficultyByName(dbc dbctx.Context, name string) (*product.Difficulty, error)

	GetDraft(dbc dbctx.Context, id uint) (*draft.TemporaryProduct, error)
	TouchDraft(dbc dbctx.Context, id uint) error
	UpsertDraft(dbc dbctx.Context, p *draft.TemporaryProduct) error
	ReplaceChapters(dbc dbctx.Context, draftID uint, chapters []draft.TemporaryChapter) error
	ListChapters(dbc dbctx.Context, draftID uint) ([]draft.TemporaryChapter, error)
	FindLecturesBySequence(dbc dbctx.Context, draftID uint, sequences []int) (map[int]draft.TemporaryLecture, error)
	ReplaceLectureMedia(dbc dbctx.Context, draftID uint, media []draft.LectureMedia) error
	ReplaceKits(dbc dbctx.Context, draftID uint, kits []draft.TemporaryKit) error
	ListKits(dbc dbctx.Context, draftID uint) ([]draft.TemporaryKit, error)
	LoadDraftTree(dbc dbctx.Context, id uint) (*draft.Tree, error)
	DeleteDraft(dbc dbctx.Context, id uint) error
	ListStaleDrafts(dbc dbctx.Context, before time.Time) ([]uint, error)
	// LockStaleDraft locks the draft row until the transaction in dbc ends,
	// provided it was last edited before the cutoff. A missing or recently
	// edited draft returns ErrNotFound.
	LockStaleDraft(dbc dbctx.Context, id uint, before time.Time) error

	CreateProduct(dbc dbctx.Context, p *product.Product) error
	GetProduct(dbc dbctx.Context, id uint) (*product.Product, error)
	CreateKit(dbc dbctx.Context, k *product.Kit) error
	LinkProductKit(dbc dbctx.Context, productID, kitID uint) error
	ListProductKits(dbc dbctx.Context, productID uint) ([]product.Kit, error)
	EnsureDetailCategory(dbc dbctx.Context, name string) (*product.DetailCategory, error)
	LinkProductDetailCategory(dbc dbctx.Context, productID, detailCategoryID uint) error
}
