package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/clubposts/internal/brand"
	"github.com/youruser/clubposts/internal/export"
	"github.com/youruser/clubposts/internal/graphic"
	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/layout"
	"github.com/youruser/clubposts/internal/players"
	"github.com/youruser/clubposts/internal/posts"
	"github.com/youruser/clubposts/internal/store"
)

type Handler struct {
	svc     *posts.Service
	catalog *layout.Catalog
	brand   brand.Brand
	players players.Repository
	store   store.GraphicStore
	log     *zap.Logger
}

func NewHandler(svc *posts.Service, catalog *layout.Catalog, b brand.Brand, repo players.Repository, st store.GraphicStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, catalog: catalog, brand: b, players: repo, store: st, log: log}
}

// health
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listLayouts(c *gin.Context) {
	grid := h.catalog.Grid()
	out := []gin.H{}
	for _, t := range h.catalog.All() {
		out = append(out, gin.H{"id": t.ID, "name": t.Name, "rows": t.Rows(grid), "blocks": t.Blocks})
	}
	c.JSON(http.StatusOK, gin.H{"grid": grid, "layouts": out})
}

func (h *Handler) getLayout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "layout id must be a number"})
		return
	}
	t, ok := h.catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("layout %d not found", id)})
		return
	}
	blocks, err := layout.Resolve(t, h.catalog.Grid())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": t.ID, "name": t.Name, "blocks": blocks})
}

func (h *Handler) listThemes(c *gin.Context) {
	out := gin.H{}
	for _, name := range h.brand.ThemeNames() {
		out[name] = h.brand.Theme(name).Hex()
	}
	c.JSON(http.StatusOK, gin.H{"default": h.brand.DefaultTheme, "themes": out})
}

func (h *Handler) filterPlayers(c *gin.Context) {
	var opt players.FilterOptions
	if err := c.ShouldBindJSON(&opt); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	all, err := h.players.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := players.Filter(all, opt)
	c.JSON(http.StatusOK, gin.H{"count": len(out), "players": out})
}

func (h *Handler) respond(c *gin.Context, r posts.Result) {
	if r.Success {
		c.JSON(http.StatusOK, r)
		return
	}
	status := http.StatusUnprocessableEntity
	if r.ErrorCode == posts.CodeContentNotFound {
		status = http.StatusNotFound
	}
	c.JSON(status, r)
}

func (h *Handler) matchday(c *gin.Context) {
	var req posts.MatchdayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, posts.Result{Error: err.Error()})
		return
	}
	h.respond(c, h.svc.GenerateMatchdayPost(c.Request.Context(), h.svc.NewCanvas(), req))
}

func (h *Handler) training(c *gin.Context) {
	var req posts.TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, posts.Result{Error: err.Error()})
		return
	}
	h.respond(c, h.svc.GenerateTrainingPost(c.Request.Context(), h.svc.NewCanvas(), req))
}

func (h *Handler) spotlight(c *gin.Context) {
	var req posts.SpotlightRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, posts.Result{Error: err.Error()})
		return
	}
	h.respond(c, h.svc.GeneratePlayerSpotlightPost(c.Request.Context(), h.svc.NewCanvas(), c.Param("playerId"), req))
}

func (h *Handler) listGraphics(c *gin.Context) {
	gs, err := h.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(gs))
	for _, g := range gs {
		out = append(out, gin.H{
			"id": g.ID, "kind": g.Kind, "layout_id": g.LayoutID, "player_id": g.PlayerID,
			"generated_at": g.GeneratedAt, "file_name": export.FileName(g),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "graphics": out})
}

func (h *Handler) downloadGraphic(c *gin.Context) {
	g, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	buf := new(bytes.Buffer)
	if err := export.WritePNG(buf, g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName(g)))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// zip of the requested ids, or of every stored graphic when ids is empty
func (h *Handler) zipGraphics(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	var gs []graphic.Generated
	if len(req.IDs) == 0 {
		all, err := h.store.List(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		gs = all
	}
	for _, id := range req.IDs {
		g, err := h.store.Get(ctx, id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("graphic %s: %v", id, err)})
			return
		}
		gs = append(gs, g)
	}
	if len(gs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no graphics to export"})
		return
	}
	buf := new(bytes.Buffer)
	if err := export.WriteZip(buf, gs); err != nil {
		h.log.Error("zip export failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="graphics.zip"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func (h *Handler) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= 2048 {
		size = v
	}
	b, err := imagepkg.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
