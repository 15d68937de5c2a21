package progress_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymprogress/internal/gymlog/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRenderer_Render(t *testing.T) {
	fakeImage := []byte{0x89, 'P', 'N', 'G'}

	rendererServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var spec progress.ChartSpec
		require.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		assert.Equal(t, "Progress for all time (01.01.2024 - 01.02.2024)", spec.Title)

		_, err := w.Write(fakeImage)
		require.NoError(t, err)
	}))
	defer rendererServer.Close()

	renderer := progress.NewHTTPRenderer(rendererServer.URL, rendererServer.Client())
	imageBytes, err := renderer.Render(context.Background(), &progress.ChartSpec{
		Title: "Progress for all time (01.01.2024 - 01.02.2024)",
	})
	require.NoError(t, err)
	assert.Equal(t, fakeImage, imageBytes)
}

func TestHTTPRenderer_Render_Non200(t *testing.T) {
	rendererServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer rendererServer.Close()

	renderer := progress.NewHTTPRenderer(rendererServer.URL, rendererServer.Client())
	_, err := renderer.Render(context.Background(), &progress.ChartSpec{})
	require.Error(t, err)
}
