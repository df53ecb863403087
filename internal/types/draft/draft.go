package draft

import "time"

// TemporaryProduct is the staged course a creator builds across the wizard
// stages. Its ID is chosen by the caller, not generated.
type TemporaryProduct struct {
	ID             uint                    `gorm:"primaryKey;autoIncrement:false"`
	UserID         uint                    `gorm:"not null;index"`
	MainCategoryID uint                    `gorm:"not null"`
	SubCategoryID  uint                    `gorm:"not null"`
	DifficultyID   uint                    `gorm:"not null"`
	Name           string                  `gorm:"size:100;not null"`
	Price          int                     `gorm:"not null"`
	Sale           float64                 `gorm:"type:numeric(3,2);not null;default:0"`
	Images         []TemporaryProductImage `gorm:"foreignKey:TemporaryProductID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time `gorm:"index"`
}

func (TemporaryProduct) TableName() string { return "temporary_products" }

type TemporaryProductImage struct {
	ID                 uint   `gorm:"primaryKey"`
	TemporaryProductID uint   `gorm:"not null;index"`
	ImageURL           string `gorm:"size:1000;not null"`
	Order              int    `gorm:"not null"`
}

func (TemporaryProductImage) TableName() string { return "temporary_product_images" }

type TemporaryChapter struct {
	ID                 uint               `gorm:"primaryKey"`
	TemporaryProductID uint               `gorm:"not null;index"`
	Name               string             `gorm:"size:100;not null"`
	Order              int                `gorm:"not null"`
	ThumbnailImage     string             `gorm:"size:1000"`
	Lectures           []TemporaryLecture `gorm:"foreignKey:TemporaryChapterID"`
}

func (TemporaryChapter) TableName() string { return "temporary_chapters" }

// TemporaryLecture carries both its order inside the chapter and its
// Sequence: the 1-based position in the draft's flattened lecture list.
// Stage-3 submissions reference lectures by Sequence.
type TemporaryLecture struct {
	ID                 uint                      `gorm:"primaryKey"`
	TemporaryChapterID uint                      `gorm:"not null;index"`
	TemporaryProductID uint                      `gorm:"not null;uniqueIndex:idx_temporary_lecture_sequence"`
	Sequence           int                       `gorm:"not null;uniqueIndex:idx_temporary_lecture_sequence"`
	Name               string                    `gorm:"size:40;not null"`
	Order              int                       `gorm:"not null"`
	VideoURL           *string                   `gorm:"size:1000"`
	Contents           []TemporaryLectureContent `gorm:"foreignKey:TemporaryLectureID"`
}

func (TemporaryLecture) TableName() string { return "temporary_lectures" }

type TemporaryLectureContent struct {
	ID                 uint   `gorm:"primaryKey"`
	TemporaryLectureID uint   `gorm:"not null;index"`
	Description        string `gorm:"size:1000;not null"`
	ImageURL           string `gorm:"size:1000;not null"`
	Order              int    `gorm:"not null"`
}

func (TemporaryLectureContent) TableName() string { return "temporary_lecture_contents" }

type TemporaryKit struct {
	ID                 uint                `gorm:"primaryKey"`
	TemporaryProductID uint                `gorm:"not null;index"`
	Name               string              `gorm:"size:100;not null"`
	Order              int                 `gorm:"not null"`
	Images             []TemporaryKitImage `gorm:"foreignKey:TemporaryKitID"`
}

func (TemporaryKit) TableName() string { return "temporary_kits" }

type TemporaryKitImage struct {
	ID             uint   `gorm:"primaryKey"`
	TemporaryKitID uint   `gorm:"not null;index"`
	ImageURL       string `gorm:"size:1000;not null"`
	Order          int    `gorm:"not null"`
}

func (TemporaryKitImage) TableName() string { return "temporary_kit_images" }

// LectureMedia is the stage-3 payload for one resolved lecture.
type LectureMedia struct {
	LectureID uint
	VideoURL  string
	Contents  []TemporaryLectureContent
}

// Tree is a fully loaded draft: basic info plus every staged child.
type Tree struct {
	Product  TemporaryProduct
	Chapters []TemporaryChapter
	Kits     []TemporaryKit
}

// Models lists the staging tables in migration order.
func Models() []any {
	return []any{
		&TemporaryProduct{},
		&TemporaryProductImage{},
		&TemporaryChapter{},
		&TemporaryLecture{},
		&TemporaryLectureContent{},
		&TemporaryKit{},
		&TemporaryKitImage{},
	}
}
