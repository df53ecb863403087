package creator

import (
	"context"
	"fmt"

	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/draft"
	"github.com/clnass/creator-service/internal/types/media"
)

// SaveLectureContents replaces every video and content item of the draft.
// videos holds one file per lecture entry; images holds one file per content
// item, flattened in request order.
func (s *Service) SaveLectureContents(ctx context.Context, draftID uint, req creator.LectureContentsRequest, videos, images []media.File) error {
	if err := s.validateStruct(req); err != nil {
		return err
	}

	totalContents := 0
	sequences := make([]int, 0, len(req.Lectures))
	seen := make(map[int]struct{}, len(req.Lectures))
	for _, l := range req.Lectures {
		if _, dup := seen[*l.LectureID]; dup {
			return fmt.Errorf("%w: lecture %d submitted twice", ErrInvalidValue, *l.LectureID)
		}
		seen[*l.LectureID] = struct{}{}
		sequences = append(sequences, *l.LectureID)
		totalContents += len(l.Contents)
	}

	if err := checkFileCount("videos", len(videos), len(req.Lectures)); err != nil {
		return err
	}
	if err := checkFileCount("images", len(images), totalContents); err != nil {
		return err
	}
	if err := s.checkFiles(videos, images); err != nil {
		return err
	}
	if err := s.requireDraft(ctx, draftID); err != nil {
		return err
	}
	if _, err := s.resolveLectures(dbctx.Background(ctx), draftID, sequences); err != nil {
		return err
	}

	// Each lecture's video is followed by its content images.
	files := make([]media.File, 0, len(videos)+len(images))
	next := 0
	for i, l := range req.Lectures {
		files = append(files, videos[i])
		files = append(files, images[next:next+len(l.Contents)]...)
		next += len(l.Contents)
	}

	return s.write(ctx, files, func(dbc dbctx.Context, urls []string) error {
		if err := s.touch(dbc, draftID); err != nil {
			return err
		}
		ids, err := s.resolveLectures(dbc, draftID, sequences)
		if err != nil {
			return err
		}

		items := make([]draft.LectureMedia, 0, len(req.Lectures))
		pos := 0
		for _, l := range req.Lectures {
			m := draft.LectureMedia{
				LectureID: ids[*l.LectureID],
				VideoURL:  urls[pos],
				Contents:  make([]draft.TemporaryLectureContent, len(l.Contents)),
			}
			pos++
			for j, c := range l.Contents {
				m.Contents[j] = draft.TemporaryLectureContent{
					Description: *c.Description,
					ImageURL:    urls[pos],
					Order:       j + 1,
				}
				pos++
			}
			items = append(items, m)
		}

		if err := s.store.ReplaceLectureMedia(dbc, draftID, items); err != nil {
			return fmt.Errorf("replace lecture media of draft %d: %w", draftID, err)
		}
		return nil
	})
}

func (s *Service) LectureContents(ctx context.Context, draftID uint) (*creator.LectureContents, error) {
	if err := s.requireDraft(ctx, draftID); err != nil {
		return nil, err
	}
	chapters, err := s.store.ListChapters(dbctx.Background(ctx), draftID)
	if err != nil {
		return nil, fmt.Errorf("list chapters of draft %d: %w", draftID, err)
	}

	out := &creator.LectureContents{Products: make([]creator.ChapterContents, 0, len(chapters))}
	for _, c := range chapters {
		cc := creator.ChapterContents{
			ChapterID:    c.ID,
			ChapterName:  c.Name,
			ChapterOrder: c.Order,
			Lectures:     make([]creator.LectureContent, 0, len(c.Lectures)),
		}
		for _, l := range c.Lectures {
			lc := creator.LectureContent{
				LectureID: l.Sequence,
				Name:      l.Name,
				VideoURL:  l.VideoURL,
				Order:     l.Order,
				Content:   make([]creator.ContentItem, 0, len(l.Contents)),
			}
			for _, item := range l.Contents {
				lc.Content = append(lc.Content, creator.ContentItem{
					Image:       item.ImageURL,
					Description: item.Description,
					Order:       item.Order,
				})
			}
			cc.Lectures = append(cc.Lectures, lc)
		}
		out.Products = append(out.Products, cc)
	}
	return out, nil
}
