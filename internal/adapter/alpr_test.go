package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatgarage/go-vehicle-logbook/internal/capture"
)

func TestALPRRecognizer_MapsResultsToCandidates(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/recognize", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"version": 2,
			"data_type": "alpr_results",
			"img_width": 640,
			"img_height": 480,
			"processing_time_ms": 41.3,
			"results": [
				{"plate": "B1234AB", "confidence": 91.2, "plate_index": 0, "region": "id"},
				{"plate": "B1234A8", "confidence": 72.8, "plate_index": 0, "region": "id"}
			]
		}`))
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL, Timeout: time.Second})

	candidates, err := rec.Recognize(context.Background(), &capture.Frame{Data: []byte("jpeg-bytes")})
	require.NoError(t, err)

	assert.Equal(t, []byte("jpeg-bytes"), gotBody)
	require.Len(t, candidates, 2)
	assert.Equal(t, capture.Candidate{Text: "B1234AB", Confidence: 91.2}, candidates[0])
	assert.Equal(t, capture.Candidate{Text: "B1234A8", Confidence: 72.8}, candidates[1])
}

func TestALPRRecognizer_PostsFrameWithoutData(t *testing.T) {
	posted := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted = true
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL})

	candidates, err := rec.Recognize(context.Background(), &capture.Frame{Data: nil})
	require.NoError(t, err)
	assert.Empty(t, candidates)
	assert.True(t, posted)
}

func TestALPRRecognizer_NoPlates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL})

	candidates, err := rec.Recognize(context.Background(), &capture.Frame{})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestALPRRecognizer_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL})

	_, err := rec.Recognize(context.Background(), &capture.Frame{})
	assert.ErrorIs(t, err, ErrRecognizerUnavailable)
}

func TestALPRRecognizer_ClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("unsupported image format"))
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL})

	_, err := rec.Recognize(context.Background(), &capture.Frame{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRecognizerUnavailable)
	assert.Contains(t, err.Error(), "unsupported image format")
}

func TestALPRRecognizer_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	rec := NewALPRRecognizer(ALPRClientConfig{Endpoint: srv.URL})

	_, err := rec.Recognize(context.Background(), &capture.Frame{})
	assert.ErrorIs(t, err, ErrBadRecognizerResponse)
}

func TestALPRRecognizer_UnreachableEndpoint(t *testing.T) {
	rec := NewALPRRecognizer(ALPRClientConfig{
		Endpoint: "http://127.0.0.1:1", // nothing listens here
		Timeout:  200 * time.Millisecond,
	})

	_, err := rec.Recognize(context.Background(), &capture.Frame{})
	assert.ErrorIs(t, err, ErrRecognizerUnavailable)
}
