package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadObserver(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	o, err := NewUploadObserver(reg)
	require.NoError(t, err)

	o.RecordUpload(10*time.Millisecond, 128, nil)
	o.RecordUpload(10*time.Millisecond, 64, errors.New("boom"))
	o.RecordDelete(time.Millisecond, nil)

	assert.Equal(t, float64(128), testutil.ToFloat64(o.bytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(o.errors.WithLabelValues("upload")))
	assert.Equal(t, float64(0), testutil.ToFloat64(o.errors.WithLabelValues("delete")))
	assert.Equal(t, 2, testutil.CollectAndCount(o.duration))
}

func TestUploadObserver_NilIsNoop(t *testing.T) {
	var o *UploadObserver
	assert.NotPanics(t, func() {
		o.RecordUpload(time.Second, 1, nil)
		o.RecordDelete(time.Second, nil)
	})
}

func TestRegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewUploadObserver(reg)
	require.NoError(t, err)
	second, err := NewUploadObserver(reg)
	require.NoError(t, err)

	first.RecordUpload(time.Millisecond, 10, nil)
	second.RecordUpload(time.Millisecond, 5, nil)
	assert.Equal(t, float64(15), testutil.ToFloat64(second.bytes))
}

func TestHTTPWrap(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := NewHTTP(reg)
	require.NoError(t, err)

	handler := h.Wrap("GET /creator/{draftId}/first", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/creator/1/first", nil))
	}

	expected := `
# HELP creator_http_requests_total HTTP requests by route, method and status.
# TYPE creator_http_requests_total counter
creator_http_requests_total{method="GET",route="GET /creator/{draftId}/first",status="404"} 2
`
	assert.NoError(t, testutil.CollectAndCompare(h.requests, strings.NewReader(expected)))
}
