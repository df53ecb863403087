package postgres

import (
	"gorm.io/gorm"

	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/product"
)

// CreateProduct inserts the product together with its sub images, chapters,
// lectures, lecture videos and lecture contents.
func (p *Postgres) CreateProduct(dbc dbctx.Context, row *product.Product) error {
	return p.conn(dbc).Create(row).Error
}

func (p *Postgres) GetProduct(dbc dbctx.Context, id uint) (*product.Product, error) {
	var row product.Product
	err := p.conn(dbc).
		Preload("SubImages", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Chapters", ordered).
		Preload("Chapters.Lectures", ordered).
		Preload("Chapters.Lectures.Video").
		Preload("Chapters.Lectures.Contents", ordered).
		First(&row, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (p *Postgres) CreateKit(dbc dbctx.Context, k *product.Kit) error {
	return p.conn(dbc).Create(k).Error
}

func (p *Postgres) LinkProductKit(dbc dbctx.Context, productID, kitID uint) error {
	return p.conn(dbc).Create(&product.ProductKit{ProductID: productID, KitID: kitID}).Error
}

// ListProductKits returns the kits linked to a product in link order.
func (p *Postgres) ListProductKits(dbc dbctx.Context, productID uint) ([]product.Kit, error) {
	db := p.conn(dbc)

	var kitIDs []uint
	err := db.Model(&product.ProductKit{}).
		Where("product_id = ?", productID).
		Order("id asc").
		Pluck("kit_id", &kitIDs).Error
	if err != nil || len(kitIDs) == 0 {
		return nil, err
	}

	var out []product.Kit
	err = db.Where("id IN ?", kitIDs).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// EnsureDetailCategory returns the detail category with the given name,
// creating it when missing.
func (p *Postgres) EnsureDetailCategory(dbc dbctx.Context, name string) (*product.DetailCategory, error) {
	var row product.DetailCategory
	err := p.conn(dbc).
		Where(product.DetailCategory{Name: name}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (p *Postgres) LinkProductDetailCategory(dbc dbctx.Context, productID, detailCategoryID uint) error {
	return p.conn(dbc).Create(&product.ProductDetailCategory{
		ProductID:        productID,
		DetailCategoryID: detailCategoryID,
	}).Error
}
