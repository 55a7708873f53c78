package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/youruser/clubposts/internal/brand"
	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/layout"
	"github.com/youruser/clubposts/internal/metrics"
	"github.com/youruser/clubposts/internal/players"
	"github.com/youruser/clubposts/internal/posts"
	"github.com/youruser/clubposts/internal/store"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := layout.LoadCatalog(layout.DefaultGrid())
	require.NoError(t, err)
	b := brand.Default()
	repo := players.NewMemoryRepository([]players.Player{
		{ID: "p-7", Number: 7, Name: "Lena Marsh", Position: "Forward", Team: "First Team", PhotoURL: "marsh.png", Active: true},
		{ID: "p-1", Number: 1, Name: "Ola Berg", Position: "Goalkeeper", Team: "First Team", PhotoURL: "berg.png", Active: true},
	})
	st := store.NewMemoryStore()
	reg := prometheus.NewRegistry()
	log := zaptest.NewLogger(t)

	svc, err := posts.NewService(posts.Deps{
		Catalog: cat,
		Brand:   b,
		Players: repo,
		Assets: imagepkg.MapAssets{
			"marsh.png": solid(200, 300, color.NRGBA{R: 200, A: 255}),
			"berg.png":  solid(200, 300, color.NRGBA{G: 200, A: 255}),
			"crest.png": solid(64, 64, color.NRGBA{B: 200, A: 255}),
		},
		Store:   st,
		Metrics: metrics.New(reg),
		Logger:  log,
		LogoRef: "crest.png",
	})
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, NewHandler(svc, cat, b, repo, st, log), reg)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) posts.Result {
	t.Helper()
	var res posts.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHealth(t *testing.T) {
	w := do(newRouter(t), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLayouts(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/layouts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Layouts []struct {
			ID   int      `json:"id"`
			Rows []string `json:"rows"`
		} `json:"layouts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Layouts, 6)
	assert.Equal(t, "hero hero beige vert", list.Layouts[0].Rows[1])

	w = do(r, http.MethodGet, "/api/layouts/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var one struct {
		Blocks []layout.Block `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Contains(t, one.Blocks, layout.Block{Tag: "hero", Type: layout.RegionPlayerImage, X: 0, Y: 180, W: 540, H: 540})

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/layouts/9", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/layouts/abc", "").Code)
}

func TestThemes(t *testing.T) {
	w := do(newRouter(t), http.MethodGet, "/api/themes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deep"`)
	assert.Contains(t, w.Body.String(), `"default":"classic"`)
}

func TestFilterPlayers(t *testing.T) {
	w := do(newRouter(t), http.MethodPost, "/api/players/filter", `{"positions":["goalkeeper"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), "Ola Berg")
}

func TestSpotlightAndDownload(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/posts/spotlight/p-7", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decodeResult(t, w)
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.ImageData, "data:image/png;base64,"))
	require.NotEmpty(t, res.GraphicID)

	w = do(r, http.MethodGet, "/api/graphics/"+res.GraphicID+"/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Regexp(t, `filename="7_lena_marsh_\d{4}-\d{2}-\d{2}\.png"`, w.Header().Get("Content-Disposition"))
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 1080, img.Bounds().Dx())

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/graphics/nope/download", "").Code)
}

func TestSpotlightUnknownPlayer(t *testing.T) {
	w := do(newRouter(t), http.MethodPost, "/api/posts/spotlight/p-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	res := decodeResult(t, w)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.ImageData)
}

func TestMatchdayAndTraining(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodPost, "/api/posts/matchday", `{"opponent":"Rivals FC","kick_off":"2026-10-10T15:00:00Z","layout_id":2,"theme":"bright"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 2, decodeResult(t, w).LayoutID)

	w = do(r, http.MethodPost, "/api/posts/matchday", `{"opponent":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/posts/matchday", `{"opponent":"Rivals FC","layout_id":42}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, posts.CodeLayoutFormat, decodeResult(t, w).ErrorCode)

	w = do(r, http.MethodPost, "/api/posts/training", `{"photo_ref":"missing.png"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, posts.CodeAssetLoad, decodeResult(t, w).ErrorCode)

	w = do(r, http.MethodPost, "/api/posts/training", "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestZipGraphics(t *testing.T) {
	r := newRouter(t)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/graphics/zip", "").Code)

	a := decodeResult(t, do(r, http.MethodPost, "/api/posts/spotlight/p-7", ""))
	b := decodeResult(t, do(r, http.MethodPost, "/api/posts/spotlight/p-1", ""))
	require.True(t, a.Success)
	require.True(t, b.Success)

	w := do(r, http.MethodGet, "/api/graphics", "")
	assert.Contains(t, w.Body.String(), `"count":2`)

	w = do(r, http.MethodPost, "/api/graphics/zip", `{"ids":["`+a.GraphicID+`"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	zr, err := zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.True(t, strings.HasPrefix(zr.File[0].Name, "7_lena_marsh_"))

	w = do(r, http.MethodPost, "/api/graphics/zip", "")
	require.Equal(t, http.StatusOK, w.Code)
	zr, err = zip.NewReader(bytes.NewReader(w.Body.Bytes()), int64(w.Body.Len()))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/graphics/zip", `{"ids":["missing"]}`).Code)
}

func TestQR(t *testing.T) {
	r := newRouter(t)
	w := do(r, http.MethodGet, "/api/qr?text=hello&size=200", "")
	require.Equal(t, http.StatusOK, w.Code)
	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/qr", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(t)
	do(r, http.MethodPost, "/api/posts/spotlight/p-404", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `clubposts_generated_total{kind="spotlight",outcome="content_not_found"} 1`)
}
