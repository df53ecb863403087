package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clnass/creator-service/internal/config"
	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/product"
)

// orderAsc sorts on the reserved "order" column.
const orderAsc = `"order" asc`

type Postgres struct {
	Db *gorm.DB
}

var _ storage.Storage = (*Postgres)(nil)

// NewPostgres opens a lib/pq connection pool, hands it to gorm and migrates
// every table the service owns.
func NewPostgres(cfg *config.Config) (*Postgres, error) {
	sqlDB, err := sql.Open("postgres", cfg.PGSQL.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	slog.Info("Connected to Postgres database", slog.String("host", cfg.PGSQL.Host), slog.String("dbname", cfg.PGSQL.DBName))

	pg := New(db)
	if err := pg.CreateTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return pg, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB) *Postgres {
	return &Postgres{Db: db}
}

func (p *Postgres) CreateTables() error {
	models := append(product.Models(), draft.Models()...)
	return p.Db.AutoMigrate(models...)
}

func (p *Postgres) Close() error {
	sqlDB, err := p.Db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (p *Postgres) Transaction(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

// conn picks the transaction carried by dbc, falling back to the pool.
func (p *Postgres) conn(dbc dbctx.Context) *gorm.DB {
	db := dbc.Tx
	if db == nil {
		db = p.Db
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}

func (p *Postgres) ListMainCategories(dbc dbctx.Context) ([]product.MainCategory, error) {
	var out []product.MainCategory
	err := p.conn(dbc).
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("id asc").
		Find(&out).Error
	return out, err
}

func (p *Postgres) ListDifficulties(dbc dbctx.Context) ([]product.Difficulty, error) {
	var out []product.Difficulty
	err := p.conn(dbc).Order("id asc").Find(&out).Error
	return out, err
}

func (p *Postgres) FindMainCategoryByName(dbc dbctx.Context, name string) (*product.MainCategory, error) {
	var row product.MainCategory
	if err := p.conn(dbc).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (p *Postgres) FindSubCategoryByName(dbc dbctx.Context, name string) (*product.SubCategory, error) {
	var row product.SubCategory
	if err := p.conn(dbc).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (p *Postgres) GetSubCategory(dbc dbctx.Context, id uint) (*product.SubCategory, error) {
	var row product.SubCategory
	if err := p.conn(dbc).First(&row, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (p *Postgres) FindDifficultyByName(dbc dbctx.Context, name string) (*product.Difficulty, error) {
	var row product.Difficulty
	if err := p.conn(dbc).Where("name = ?", name).First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}
