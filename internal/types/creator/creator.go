// Package creator holds the request bodies accepted by the wizard stages and
// the read models returned by their GETs.
//
// Request fields are pointers so that a missing key is distinguishable from
// a zero value.
package creator

// BasicInfoRequest is the stage-1 body. Sale is stored with two decimals, so
// anything above 0.99 would round up to a full discount.
type BasicInfoRequest struct {
	UserID          *uint    `json:"user_id" validate:"required"`
	CategoryName    *string  `json:"categoryName" validate:"required"`
	SubCategoryName *string  `json:"subCategoryName" validate:"required"`
	DifficultyName  *string  `json:"difficultyName" validate:"required"`
	Name            *string  `json:"name" validate:"required,max=100"`
	Price           *int     `json:"price" validate:"required,gte=0"`
	Sale            *float64 `json:"sale" validate:"omitempty,gte=0,lte=0.99"`
}

type OutlineRequest struct {
	Chapters []ChapterInput `json:"chapters" validate:"required,dive"`
}

type ChapterInput struct {
	Name     *string        `json:"name" validate:"required,max=100"`
	Lectures []LectureInput `json:"lectures" validate:"required,dive"`
}

type LectureInput struct {
	Name *string `json:"name" validate:"required,max=40"`
}

type LectureContentsRequest struct {
	Lectures []LectureMediaInput `json:"lectures" validate:"required,dive"`
}

// LectureMediaInput targets a lecture by its sequence, the 1-based position
// in the flattened stage-2 lecture list.
type LectureMediaInput struct {
	LectureID *int           `json:"lecture_id" validate:"required"`
	Contents  []ContentInput `json:"contents" validate:"required,dive"`
}

type ContentInput struct {
	Description *string `json:"description" validate:"required,max=1000"`
}

type KitsRequest struct {
	Kits []KitInput `json:"kits" validate:"required,dive"`
}

type KitInput struct {
	Name *string `json:"name" validate:"required,max=100"`
}

type Catalog struct {
	Categories   []Category   `json:"categories"`
	Difficulties []Difficulty `json:"difficulties"`
}

type Category struct {
	ID            uint          `json:"id"`
	Name          string        `json:"name"`
	SubCategories []SubCategory `json:"subCategories"`
}

type SubCategory struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Difficulty struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BasicInfo struct {
	Catalog
	TemporaryInformation TemporaryInformation `json:"temporaryInformation"`
}

type TemporaryInformation struct {
	MainCategoryID uint     `json:"mainCategoryId"`
	SubCategoryID  uint     `json:"subCategoryId"`
	DifficultyID   uint     `json:"difficultyId"`
	Name           string   `json:"name"`
	Price          int      `json:"price"`
	Sale           string   `json:"sale"`
	Images         []string `json:"images"`
}

type Outline struct {
	Chapters []ChapterOutline `json:"chapters"`
}

type ChapterOutline struct {
	ChapterID uint             `json:"chapterId"`
	Name      string           `json:"name"`
	MainImage string           `json:"mainImage"`
	Lectures  []LectureOutline `json:"lectures"`
}

type LectureOutline struct {
	LectureID int    `json:"lectureId"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
}

type LectureContents struct {
	Products []ChapterContents `json:"products"`
}

type ChapterContents struct {
	ChapterID    uint             `json:"chapter_id"`
	ChapterName  string           `json:"chapterName"`
	ChapterOrder int              `json:"chapterOrder"`
	Lectures     []LectureContent `json:"lectures"`
}

type LectureContent struct {
	LectureID int           `json:"lecture_id"`
	Name      string        `json:"name"`
	VideoURL  *string       `json:"videoUrl"`
	Order     int           `json:"order"`
	Content   []ContentItem `json:"content"`
}

type ContentItem struct {
	Image       string `json:"image"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Kits struct {
	Kits []Kit `json:"kits"`
}

type Kit struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	ImageURLs []string `json:"imageUrls"`
}

type PromoteResult struct {
	Message   string `json:"message"`
	ProductID uint   `json:"productId"`
}
