package creator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clnass/creator-service/internal/storage"
	"github.com/clnass/creator-service/internal/storage/dbctx"
	"github.com/clnass/creator-service/internal/types/media"
)

// validateStruct runs the struct tags of a stage request. A missing key wins
// over a bad value so clients see KEY_ERROR first.
func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	for _, fe := range ve {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s", ErrKey, fe.Namespace())
		}
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalidValue, ve[0].Namespace(), ve[0].Tag())
}

func checkFileCount(field string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s expects %d files, got %d", ErrKey, field, want, got)
	}
	return nil
}

func (s *Service) checkFiles(groups ...[]media.File) error {
	for _, files := range groups {
		for _, f := range files {
			if err := s.uploader.Check(f); err != nil {
				return fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
			}
		}
	}
	return nil
}

// lookup turns a catalog miss into a LookupError for entity.
func lookup(err error, entity string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &LookupError{Entity: entity}
	}
	return fmt.Errorf("find %s: %w", entity, err)
}

// touch marks the draft as recently edited. Stage transactions call it first
// so the row lock orders them against the sweeper.
func (s *Service) touch(dbc dbctx.Context, draftID uint) error {
	err := s.store.TouchDraft(dbc, draftID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrDraftNotFound
	}
	return err
}

func (s *Service) resolveLectures(dbc dbctx.Context, draftID uint, sequences []int) (map[int]uint, error) {
	found, err := s.store.FindLecturesBySequence(dbc, draftID, sequences)
	if err != nil {
		return nil, fmt.Errorf("find lectures: %w", err)
	}
	ids := make(map[int]uint, len(sequences))
	for _, seq := range sequences {
		l, ok := found[seq]
		if !ok {
			return nil, fmt.Errorf("%w: lecture %d", ErrLectureNotFound, seq)
		}
		ids[seq] = l.ID
	}
	return ids, nil
}
