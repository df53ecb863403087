package creator

import (
	"net/http"

	"github.com/clnass/creator-service/internal/types/creator"
	"github.com/clnass/creator-service/internal/types/media"
	"github.com/clnass/creator-service/internal/utils/response"
)

// readForm parses the form and decodes its body field into v, then reads
// the files under each field.
func (h *Handlers) readForm(w http.ResponseWriter, r *http.Request, v any, fields ...string) ([][]media.File, error) {
	if err := h.parseForm(w, r); err != nil {
		return nil, err
	}
	if err := decodeBody(r, v); err != nil {
		return nil, err
	}

	groups := make([][]media.File, len(fields))
	for i, field := range fields {
		files, err := formFiles(r, field)
		if err != nil {
			return nil, err
		}
		groups[i] = files
	}
	return groups, nil
}

// PostBasicInfo saves stage 1
// @Summary Save basic course information
// @Description Creates the draft or overwrites its category, difficulty, name, price, sale and images.
// @Tags creator
// @Accept multipart/form-data
// @Produce json
// @Param draftId path int true "Draft ID"
// @Param body formData string true "creator.BasicInfoRequest as JSON"
// @Param files formData file false "Course images, in display order"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 413 {object} response.Response
// @Failure 500 {object} response.Response
// @Security BearerAuth
// @Router /creator/{draftId}/first [post]
func (h *Handlers) PostBasicInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var req creator.BasicInfoRequest
		files, err := h.readForm(w, r, &req, "files")
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := h.svc.SaveBasicInfo(r.Context(), id, req, files[0]); err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, response.Success())
	}
}

// GetBasicInfo returns stage 1
// @Summary Get basic course information
// @Tags creator
// @Produce json
// @Param draftId path int true "Draft ID"
// @Success 200 {object} creator.BasicInfo
// @Failure 404 {object} response.Response
// @Router /creator/{draftId}/first [get]
func (h *Handlers) GetBasicInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := h.svc.BasicInfo(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, out)
	}
}

// PostOutline saves stage 2
// @Summary Save chapters and lectures
// @Description Replaces every chapter and lecture of the draft. One thumbnail file per chapter.
// @Tags creator
// @Accept multipart/form-data
// @Produce json
// @Param draftId path int true "Draft ID"
// @Param body formData string true "creator.OutlineRequest as JSON"
// @Param files formData file true "Chapter thumbnails, one per chapter"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /creator/{draftId}/second [post]
func (h *Handlers) PostOutline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var req creator.OutlineRequest
		files, err := h.readForm(w, r, &req, "files")
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := h.svc.SaveOutline(r.Context(), id, req, files[0]); err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, response.Success())
	}
}

// GetOutline returns stage 2
// @Summary Get chapters and lectures
// @Tags creator
// @Produce json
// @Param draftId path int true "Draft ID"
// @Success 200 {object} creator.Outline
// @Failure 404 {object} response.Response
// @Router /creator/{draftId}/second [get]
func (h *Handlers) GetOutline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := h.svc.Outline(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, out)
	}
}

// PostLectureContents saves stage 3
// @Summary Save lecture videos and contents
// @Description Replaces every lecture video and content item of the draft. lecture_id is the lecture's position in the stage-2 outline.
// @Tags creator
// @Accept multipart/form-data
// @Produce json
// @Param draftId path int true "Draft ID"
// @Param body formData string true "creator.LectureContentsRequest as JSON"
// @Param videos formData file true "One video per lecture entry"
// @Param images formData file false "One image per content item, flattened"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /creator/{draftId}/third [post]
func (h *Handlers) PostLectureContents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var req creator.LectureContentsRequest
		files, err := h.readForm(w, r, &req, "videos", "images")
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := h.svc.SaveLectureContents(r.Context(), id, req, files[0], files[1]); err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, response.Success())
	}
}

// GetLectureContents returns stage 3
// @Summary Get lecture videos and contents
// @Tags creator
// @Produce json
// @Param draftId path int true "Draft ID"
// @Success 200 {object} creator.LectureContents
// @Failure 404 {object} response.Response
// @Router /creator/{draftId}/third [get]
func (h *Handlers) GetLectureContents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := h.svc.LectureContents(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, out)
	}
}

// PostKits saves stage 4
// @Summary Save kits
// @Tags creator
// @Accept multipart/form-data
// @Produce json
// @Param draftId path int true "Draft ID"
// @Param body formData string true "creator.KitsRequest as JSON"
// @Param files formData file true "One image per kit"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /creator/{draftId}/fourth [post]
func (h *Handlers) PostKits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		var req creator.KitsRequest
		files, err := h.readForm(w, r, &req, "files")
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if err := h.svc.SaveKits(r.Context(), id, req, files[0]); err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, response.Success())
	}
}

// GetKits returns stage 4
// @Summary Get kits
// @Tags creator
// @Produce json
// @Param draftId path int true "Draft ID"
// @Success 200 {object} creator.Kits
// @Failure 404 {object} response.Response
// @Router /creator/{draftId}/fourth [get]
func (h *Handlers) GetKits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		out, err := h.svc.Kits(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, out)
	}
}

// PostCreate promotes the draft
// @Summary Publish the draft
// @Description Copies the draft into a published product and deletes the draft.
// @Tags creator
// @Produce json
// @Param draftId path int true "Draft ID"
// @Success 200 {object} creator.PromoteResult
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Security BearerAuth
// @Router /creator/{draftId}/create [post]
func (h *Handlers) PostCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := draftID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		productID, err := h.svc.Promote(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		response.WriteJSON(w, http.StatusOK, creator.PromoteResult{Message: response.MessageSuccess, ProductID: productID})
	}
}
