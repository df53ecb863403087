package postgres

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/draft"
)

func ordered(db *gorm.DB) *gorm.DB { return db.Order(orderAsc) }

func (p *Postgres) GetDraft(dbc dbctx.Context, id uint) (*draft.TemporaryProduct, error) {
	var row draft.TemporaryProduct
	if err := p.conn(dbc).Preload("Images", ordered).First(&row, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// TouchDraft bumps updated_at so the sweeper treats the draft as active.
func (p *Postgres) TouchDraft(dbc dbctx.Context, id uint) error {
	res := p.conn(dbc).Model(&draft.TemporaryProduct{}).
		Where("id = ?", id).
		Update("updated_at", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// UpsertDraft inserts or overwrites the draft row keyed by p.ID and replaces
// its image list with p.Images.
func (p *Postgres) UpsertDraft(dbc dbctx.Context, row *draft.TemporaryProduct) error {
	db := p.conn(dbc)

	images := row.Images
	row.Images = nil
	defer func() { row.Images = images }()

	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "main_category_id", "sub_category_id", "difficulty_id",
				"name", "price", "sale", "updated_at",
			}),
		}).
		Create(row).Error
	if err != nil {
		return err
	}

	if err := db.Where("temporary_product_id = ?", row.ID).Delete(&draft.TemporaryProductImage{}).Error; err != nil {
		return err
	}
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		images[i].ID = 0
		images[i].TemporaryProductID = row.ID
	}
	return db.Create(&images).Error
}

func (p *Postgres) lectureIDs(db *gorm.DB, draftID uint) ([]uint, error) {
	var ids []uint
	err := db.Model(&draft.TemporaryLecture{}).
		Where("temporary_product_id = ?", draftID).
		Pluck("id", &ids).Error
	return ids, err
}

func (p *Postgres) deleteLectureContents(db *gorm.DB, draftID uint) error {
	ids, err := p.lectureIDs(db, draftID)
	if err != nil || len(ids) == 0 {
		return err
	}
	return db.Where("temporary_lecture_id IN ?", ids).Delete(&draft.TemporaryLectureContent{}).Error
}

func (p *Postgres) deleteChapters(db *gorm.DB, draftID uint) error {
	if err := p.deleteLectureContents(db, draftID); err != nil {
		return err
	}
	if err := db.Where("temporary_product_id = ?", draftID).Delete(&draft.TemporaryLecture{}).Error; err != nil {
		return err
	}
	return db.Where("temporary_product_id = ?", draftID).Delete(&draft.TemporaryChapter{}).Error
}

func (p *Postgres) deleteKits(db *gorm.DB, draftID uint) error {
	var ids []uint
	if err := db.Model(&draft.TemporaryKit{}).Where("temporary_product_id = ?", draftID).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := db.Where("temporary_kit_id IN ?", ids).Delete(&draft.TemporaryKitImage{}).Error; err != nil {
		return err
	}
	return db.Where("id IN ?", ids).Delete(&draft.TemporaryKit{}).Error
}

// ReplaceChapters drops every staged chapter, lecture and lecture content of
// the draft and creates chapters with their nested lectures.
func (p *Postgres) ReplaceChapters(dbc dbctx.Context, draftID uint, chapters []draft.TemporaryChapter) error {
	db := p.conn(dbc)
	if err := p.deleteChapters(db, draftID); err != nil {
		return err
	}
	if len(chapters) == 0 {
		return nil
	}
	for i := range chapters {
		chapters[i].ID = 0
		chapters[i].TemporaryProductID = draftID
		for j := range chapters[i].Lectures {
			chapters[i].Lectures[j].ID = 0
			chapters[i].Lectures[j].TemporaryProductID = draftID
		}
	}
	return db.Create(&chapters).Error
}

func (p *Postgres) ListChapters(dbc dbctx.Context, draftID uint) ([]draft.TemporaryChapter, error) {
	var out []draft.TemporaryChapter
	err := p.conn(dbc).
		Where("temporary_product_id = ?", draftID).
		Preload("Lectures", ordered).
		Preload("Lectures.Contents", ordered).
		Order(orderAsc).
		Find(&out).Error
	return out, err
}

// FindLecturesBySequence returns the draft's lectures keyed by sequence.
// Unknown sequences are simply absent from the map.
func (p *Postgres) FindLecturesBySequence(dbc dbctx.Context, draftID uint, sequences []int) (map[int]draft.TemporaryLecture, error) {
	out := make(map[int]draft.TemporaryLecture, len(sequences))
	if len(sequences) == 0 {
		return out, nil
	}
	var rows []draft.TemporaryLecture
	err := p.conn(dbc).
		Where("temporary_product_id = ? AND sequence IN ?", draftID, sequences).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, l := range rows {
		out[l.Sequence] = l
	}
	return out, nil
}

// ReplaceLectureMedia clears the draft's stage-3 data then applies media.
func (p *Postgres) ReplaceLectureMedia(dbc dbctx.Context, draftID uint, media []draft.LectureMedia) error {
	db := p.conn(dbc)
	if err := p.deleteLectureContents(db, draftID); err != nil {
		return err
	}
	err := db.Model(&draft.TemporaryLecture{}).
		Where("temporary_product_id = ?", draftID).
		Update("video_url", nil).Error
	if err != nil {
		return err
	}

	for _, m := range media {
		err := db.Model(&draft.TemporaryLecture{}).
			Where("id = ? AND temporary_product_id = ?", m.LectureID, draftID).
			Update("video_url", m.VideoURL).Error
		if err != nil {
			return err
		}
		if len(m.Contents) == 0 {
			continue
		}
		contents := m.Contents
		for i := range contents {
			contents[i].ID = 0
			contents[i].TemporaryLectureID = m.LectureID
		}
		if err := db.Create(&contents).Error; err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) ReplaceKits(dbc dbctx.Context, draftID uint, kits []draft.TemporaryKit) error {
	db := p.conn(dbc)
	if err := p.deleteKits(db, draftID); err != nil {
		return err
	}
	if len(kits) == 0 {
		return nil
	}
	for i := range kits {
		kits[i].ID = 0
		kits[i].TemporaryProductID = draftID
		for j := range kits[i].Images {
			kits[i].Images[j].ID = 0
		}
	}
	return db.Create(&kits).Error
}

func (p *Postgres) ListKits(dbc dbctx.Context, draftID uint) ([]draft.TemporaryKit, error) {
	var out []draft.TemporaryKit
	err := p.conn(dbc).
		Where("temporary_product_id = ?", draftID).
		Preload("Images", ordered).
		Order(orderAsc).
		Find(&out).Error
	return out, err
}

func (p *Postgres) LoadDraftTree(dbc dbctx.Context, id uint) (*draft.Tree, error) {
	row, err := p.GetDraft(dbc, id)
	if err != nil {
		return nil, err
	}
	chapters, err := p.ListChapters(dbc, id)
	if err != nil {
		return nil, err
	}
	kits, err := p.ListKits(dbc, id)
	if err != nil {
		return nil, err
	}
	return &draft.Tree{Product: *row, Chapters: chapters, Kits: kits}, nil
}

// DeleteDraft removes the draft and all of its staged children, leaves first.
func (p *Postgres) DeleteDraft(dbc dbctx.Context, id uint) error {
	db := p.conn(dbc)
	if err := p.deleteChapters(db, id); err != nil {
		return err
	}
	if err := p.deleteKits(db, id); err != nil {
		return err
	}
	if err := db.Where("temporary_product_id = ?", id).Delete(&draft.TemporaryProductImage{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&draft.TemporaryProduct{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) ListStaleDrafts(dbc dbctx.Context, before time.Time) ([]uint, error) {
	var ids []uint
	err := p.conn(dbc).Model(&draft.TemporaryProduct{}).
		Where("updated_at < ?", before).
		Order("id asc").
		Pluck("id", &ids).Error
	return ids, err
}

func (p *Postgres) LockStaleDraft(dbc dbctx.Context, id uint, before time.Time) error {
	var row draft.TemporaryProduct
	err := p.conn(dbc).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND updated_at < ?", id, before).
		Take(&row).Error
	return notFound(err)
}
