package product

import "time"

type MainCategory struct {
	ID            uint          `gorm:"primaryKey"`
	Name          string        `gorm:"size:50;not null"`
	SubCategories []SubCategory `gorm:"foreignKey:MainCategoryID"`
}

func (MainCategory) TableName() string { return "main_categories" }

type SubCategory struct {
	ID             uint   `gorm:"primaryKey"`
	MainCategoryID *uint  `gorm:"index"`
	Name           string `gorm:"size:50;not null"`
}

func (SubCategory) TableName() string { return "sub_categories" }

type Difficulty struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:20;not null"`
}

func (Difficulty) TableName() string { return "difficulties" }

type DetailCategory struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:40;not null;uniqueIndex"`
}

func (DetailCategory) TableName() string { return "detail_categories" }

// Product is a published course.
type Product struct {
	ID             uint              `gorm:"primaryKey"`
	UserID         uint              `gorm:"not null;index"`
	MainCategoryID uint              `gorm:"not null"`
	SubCategoryID  uint              `gorm:"not null"`
	DifficultyID   uint              `gorm:"not null"`
	Name           string            `gorm:"size:100;not null"`
	Price          int               `gorm:"not null"`
	Sale           float64           `gorm:"type:numeric(3,2);not null;default:0"`
	StartDate      time.Time         `gorm:"type:date;not null"`
	ThumbnailImage string            `gorm:"size:1000"`
	IsDeleted      bool              `gorm:"not null;default:false"`
	SubImages      []ProductSubImage `gorm:"foreignKey:ProductID"`
	Chapters       []Chapter         `gorm:"foreignKey:ProductID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Product) TableName() string { return "products" }

type ProductSubImage struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"size:1000;not null"`
}

func (ProductSubImage) TableName() string { return "product_sub_images" }

type Chapter struct {
	ID             uint      `gorm:"primaryKey"`
	ProductID      uint      `gorm:"not null;index"`
	Name           string    `gorm:"size:100;not null"`
	Order          int       `gorm:"not null"`
	ThumbnailImage string    `gorm:"size:1000"`
	Lectures       []Lecture `gorm:"foreignKey:ChapterID"`
}

func (Chapter) TableName() string { return "chapters" }

type Lecture struct {
	ID        uint             `gorm:"primaryKey"`
	ChapterID uint             `gorm:"not null;index"`
	Name      string           `gorm:"size:40;not null"`
	Order     int              `gorm:"not null"`
	Video     *LectureVideo    `gorm:"foreignKey:LectureID"`
	Contents  []LectureContent `gorm:"foreignKey:LectureID"`
}

func (Lecture) TableName() string { return "lectures" }

type LectureVideo struct {
	ID        uint    `gorm:"primaryKey"`
	LectureID uint    `gorm:"not null;uniqueIndex"`
	VideoURL  *string `gorm:"size:1000"`
}

func (LectureVideo) TableName() string { return "lecture_videos" }

type LectureContent struct {
	ID          uint   `gorm:"primaryKey"`
	LectureID   uint   `gorm:"not null;index"`
	Order       int    `gorm:"not null"`
	Description string `gorm:"size:1000"`
	ImageURL    string `gorm:"size:1000"`
}

func (LectureContent) TableName() string { return "lecture_contents" }

type Kit struct {
	ID     uint       `gorm:"primaryKey"`
	Name   string     `gorm:"size:100;not null"`
	Images []KitImage `gorm:"foreignKey:KitID"`
}

func (Kit) TableName() string { return "kits" }

type KitImage struct {
	ID       uint   `gorm:"primaryKey"`
	KitID    uint   `gorm:"not null;index"`
	ImageURL string `gorm:"size:1000;not null"`
}

func (KitImage) TableName() string { return "kit_images" }

type ProductKit struct {
	ID        uint `gorm:"primaryKey"`
	ProductID uint `gorm:"not null;index"`
	KitID     uint `gorm:"not null;index"`
}

func (ProductKit) TableName() string { return "products_kits" }

type ProductDetailCategory struct {
	ID               uint `gorm:"primaryKey"`
	ProductID        uint `gorm:"not null;index"`
	DetailCategoryID uint `gorm:"not null;index"`
}

func (ProductDetailCategory) TableName() string { return "products_detail_categories" }

// Models lists the permanent tables in migration order.
func Models() []any {
	return []any{
		&MainCategory{},
		&SubCategory{},
		&Difficulty{},
		&DetailCategory{},
		&Product{},
		&ProductSubImage{},
		&Chapter{},
		&Lecture{},
		&LectureVideo{},
		&LectureContent{},
		&Kit{},
		&KitImage{},
		&ProductKit{},
		&ProductDetailCategory{},
	}
}
