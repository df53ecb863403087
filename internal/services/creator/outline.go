package creator

import (
	"context"
	"fmt"

	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/media"
)

// SaveOutline replaces the draft's chapters and lectures. files holds one
// thumbnail per chapter, in chapter order. Lecture contents and videos saved
// by an earlier stage-3 call are dropped with the old lectures.
func (s *Service) SaveOutline(ctx context.Context, draftID uint, req creator.OutlineRequest, files []media.File) error {
	if err := s.validateStruct(req); err != nil {
		return err
	}
	if err := checkFileCount("files", len(files), len(req.Chapters)); err != nil {
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
		chapters := buildChapters(req.Chapters, urls)
		if err := s.store.ReplaceChapters(dbc, draftID, chapters); err != nil {
			return fmt.Errorf("replace chapters of draft %d: %w", draftID, err)
		}
		return nil
	})
}

// buildChapters numbers chapters and lectures from 1 and gives every lecture
// its sequence across the whole draft.
func buildChapters(in []creator.ChapterInput, thumbnails []string) []draft.TemporaryChapter {
	chapters := make([]draft.TemporaryChapter, len(in))
	sequence := 0
	for i, c := range in {
		lectures := make([]draft.TemporaryLecture, len(c.Lectures))
		for j, l := range c.Lectures {
			sequence++
			lectures[j] = draft.TemporaryLecture{
				Name:     *l.Name,
				Order:    j + 1,
				Sequence: sequence,
			}
		}
		chapters[i] = draft.TemporaryChapter{
			Name:           *c.Name,
			Order:          i + 1,
			ThumbnailImage: thumbnails[i],
			Lectures:       lectures,
		}
	}
	return chapters
}

func (s *Service) Outline(ctx context.Context, draftID uint) (*creator.Outline, error) {
	if err := s.requireDraft(ctx, draftID); err != nil {
		return nil, err
	}
	chapters, err := s.store.ListChapters(dbctx.Background(ctx), draftID)
	if err != nil {
		return nil, fmt.Errorf("list chapters of draft %d: %w", draftID, err)
	}

	out := &creator.Outline{Chapters: make([]creator.ChapterOutline, 0, len(chapters))}
	for _, c := range chapters {
		co := creator.ChapterOutline{
			ChapterID: c.ID,
			Name:      c.Name,
			MainImage: c.ThumbnailImage,
			Lectures:  make([]creator.LectureOutline, 0, len(c.Lectures)),
		}
		for _, l := range c.Lectures {
			co.Lectures = append(co.Lectures, creator.LectureOutline{LectureID: l.Sequence, Name: l.Name, Order: l.Order})
		}
		out.Chapters = append(out.Chapters, co)
	}
	return out, nil
}
