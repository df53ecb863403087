package creator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	creatorsvc "github.com/clnass/creator-service/internal/services/creator"
	"github.com/clnass/creator-service/internal/types/media"
	"github.com/clnass/creator-service/internal/utils/response"
)

var (
	ErrInvalidDraftID  = errors.New("INVALID_DRAFT_ID")
	ErrRequestTooLarge = errors.New("REQUEST_TOO_LARGE")
)

const msgInternal = "INTERNAL_SERVER_ERROR"

type Handlers struct {
	svc            *creatorsvc.Service
	maxMemory      int64
	maxRequestSize int64
	log            *slog.Logger
}

// New builds the handlers. maxMemory is the part of a multipart form kept in
// memory; maxRequestSize caps the whole request body, 0 meaning no cap.
func New(svc *creatorsvc.Service, maxMemory, maxRequestSize int64, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{svc: svc, maxMemory: maxMemory, maxRequestSize: maxRequestSize, log: log}
}

// Register mounts the wizard routes on mux. protect wraps every POST route;
// instrument, when set, wraps every route under its pattern.
func (h *Handlers) Register(mux *http.ServeMux, protect func(http.Handler) http.Handler, instrument func(route string, next http.Handler) http.Handler) {
	if protect == nil {
		protect = func(next http.Handler) http.Handler { return next }
	}
	if instrument == nil {
		instrument = func(_ string, next http.Handler) http.Handler { return next }
	}

	routes := []struct {
		pattern   string
		handler   http.Handler
		protected bool
	}{
		{"POST /creator/{draftId}/first", h.PostBasicInfo(), true},
		{"GET /creator/{draftId}/first", h.GetBasicInfo(), false},
		{"POST /creator/{draftId}/second", h.PostOutline(), true},
		{"GET /creator/{draftId}/second", h.GetOutline(), false},
		{"POST /creator/{draftId}/third", h.PostLectureContents(), true},
		{"GET /creator/{draftId}/third", h.GetLectureContents(), false},
		{"POST /creator/{draftId}/fourth", h.PostKits(), true},
		{"GET /creator/{draftId}/fourth", h.GetKits(), false},
		{"POST /creator/{draftId}/create", h.PostCreate(), true},
	}
	for _, rt := range routes {
		handler := rt.handler
		if rt.protected {
			handler = protect(handler)
		}
		mux.Handle(rt.pattern, instrument(rt.pattern, handler))
	}
}

func draftID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("draftId"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDraftID, r.PathValue("draftId"))
	}
	return uint(id), nil
}

// parseForm reads a multipart (or url-encoded) form. A request without any
// form simply has no body field.
func (h *Handlers) parseForm(w http.ResponseWriter, r *http.Request) error {
	if h.maxRequestSize > 0 {
		if r.ContentLength > h.maxRequestSize {
			return fmt.Errorf("%w: %d bytes", ErrRequestTooLarge, r.ContentLength)
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	err := r.ParseMultipartForm(h.maxMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %v", ErrRequestTooLarge, err)
	}
	return fmt.Errorf("%w: %v", creatorsvc.ErrKey, err)
}

// decodeBody unmarshals the JSON document carried in the "body" field.
func decodeBody(r *http.Request, v any) error {
	values, ok := r.PostForm["body"]
	if !ok || len(values) == 0 {
		return fmt.Errorf("%w: body", creatorsvc.ErrKey)
	}

	if err := json.NewDecoder(strings.NewReader(values[0])).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %s", creatorsvc.ErrInvalidValue, typeErr.Field)
		}
		return fmt.Errorf("%w: %v", creatorsvc.ErrJSON, err)
	}
	return nil
}

// formFiles reads every file sent under field, in request order.
func formFiles(r *http.Request, field string) ([]media.File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]media.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		files = append(files, media.File{Name: fh.Filename, ContentType: contentType, Data: data})
	}
	return files, nil
}

func errorStatus(err error) (int, string) {
	var lookupErr *creatorsvc.LookupError
	if errors.As(err, &lookupErr) {
		return http.StatusBadRequest, lookupErr.Error()
	}
	if errors.Is(err, creatorsvc.ErrDraftNotFound) {
		return http.StatusNotFound, creatorsvc.ErrDraftNotFound.Error()
	}
	if errors.Is(err, ErrRequestTooLarge) {
		return http.StatusRequestEntityTooLarge, ErrRequestTooLarge.Error()
	}
	for _, target := range []error{
		creatorsvc.ErrKey,
		creatorsvc.ErrInvalidValue,
		creatorsvc.ErrUnsupportedFile,
		creatorsvc.ErrJSON,
		creatorsvc.ErrLectureNotFound,
		ErrInvalidDraftID,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}
	return http.StatusInternalServerError, msgInternal
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.Error("creator request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	} else {
		h.log.Debug("creator request rejected", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
	}
	response.WriteJSON(w, status, response.Message(msg))
}
