// Package posts generates matchday, training and player spotlight graphics.
package posts

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/clubposts/internal/brand"
	"github.com/youruser/clubposts/internal/graphic"
	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/layout"
	"github.com/youruser/clubposts/internal/metrics"
	"github.com/youruser/clubposts/internal/players"
	"github.com/youruser/clubposts/internal/store"
)

// Deps wires a Service. Store, Metrics, Picker, Logger and Now are optional.
type Deps struct {
	Catalog      *layout.Catalog
	Brand        brand.Brand
	Players      players.Repository
	Assets       imagepkg.AssetLoader
	Store        store.GraphicStore
	Metrics      *metrics.Metrics
	Picker       Picker
	Logger       *zap.Logger
	LogoRef      string
	WhiteLogoRef string
	Now          func() time.Time
}

type Service struct {
	deps    Deps
	grid    layout.GridConfig
	painter *imagepkg.Painter
	log     *zap.Logger
}

func NewService(d Deps) (*Service, error) {
	if d.Catalog == nil || d.Players == nil || d.Assets == nil {
		return nil, errors.New("posts: catalog, players and assets are required")
	}
	if d.LogoRef == "" {
		return nil, errors.New("posts: logo reference is required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Picker == nil {
		d.Picker = HashPicker
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Brand.Fonts == nil {
		d.Brand.Fonts = brand.LoadFonts()
	}
	return &Service{
		deps:    d,
		grid:    d.Catalog.Grid(),
		painter: imagepkg.NewPainter(d.Brand, d.Logger),
		log:     d.Logger,
	}, nil
}

// Grid is the geometry canvases passed to the service must have.
func (s *Service) Grid() layout.GridConfig { return s.grid }

// NewCanvas returns a canvas matching the service grid.
func (s *Service) NewCanvas() *imagepkg.Canvas { return imagepkg.NewCanvas(s.grid) }

// job is one resolved generation request.
type job struct {
	kind      graphic.Kind
	key       string
	opts      Options
	content   imagepkg.Content
	photoRefs []string
	player    *players.Player
}

func (s *Service) GenerateMatchdayPost(ctx context.Context, cv *imagepkg.Canvas, req MatchdayRequest) Result {
	return s.run(ctx, cv, graphic.KindMatchday, func() (job, error) { return s.matchdayJob(ctx, req) })
}

func (s *Service) GenerateTrainingPost(ctx context.Context, cv *imagepkg.Canvas, req TrainingRequest) Result {
	return s.run(ctx, cv, graphic.KindTraining, func() (job, error) { return s.trainingJob(ctx, req) })
}

func (s *Service) GeneratePlayerSpotlightPost(ctx context.Context, cv *imagepkg.Canvas, playerID string, req SpotlightRequest) Result {
	return s.run(ctx, cv, graphic.KindSpotlight, func() (job, error) { return s.spotlightJob(ctx, playerID, req) })
}

func (s *Service) run(ctx context.Context, cv *imagepkg.Canvas, kind graphic.Kind, build func() (job, error)) Result {
	start := time.Now()
	g, err := s.generate(ctx, cv, build)
	if err != nil {
		code := codeOf(err)
		s.deps.Metrics.Observe(string(kind), strings.ToLower(string(code)), time.Since(start))
		s.log.Warn("post generation failed", zap.String("kind", string(kind)), zap.String("code", string(code)), zap.Error(err))
		return failure(err)
	}
	s.deps.Metrics.Observe(string(kind), "success", time.Since(start))
	s.log.Info("post generated",
		zap.String("kind", string(kind)),
		zap.String("id", g.ID),
		zap.Int("layout", g.LayoutID),
		zap.Duration("took", time.Since(start)))
	return success(g)
}

func (s *Service) generate(ctx context.Context, cv *imagepkg.Canvas, build func() (job, error)) (graphic.Generated, error) {
	if cv == nil {
		return graphic.Generated{}, errors.New("no canvas")
	}
	if cv.Grid() != s.grid {
		return graphic.Generated{}, fmt.Errorf("canvas is %dx%d, want %dx%d", cv.Width(), cv.Height(), s.grid.CanvasWidth, s.grid.CanvasHeight)
	}
	j, err := build()
	if err != nil {
		return graphic.Generated{}, err
	}

	tmpl, err := s.selectLayout(j)
	if err != nil {
		return graphic.Generated{}, err
	}
	blocks, err := layout.Resolve(tmpl, s.grid, layout.WithOverrides(profiles[j.kind].overrides))
	if err != nil {
		return graphic.Generated{}, err
	}

	theme := s.deps.Brand.Theme(j.opts.Theme)
	content := j.content
	content.Theme = theme
	if err := s.loadImages(ctx, blocks, j, &content); err != nil {
		return graphic.Generated{}, err
	}

	if cv.Touched() {
		cv.Reset()
	}
	if err := s.painter.Compose(cv, blocks, content); err != nil {
		return graphic.Generated{}, err
	}
	data, err := imagepkg.EncodeDataURL(cv.Image())
	if err != nil {
		return graphic.Generated{}, err
	}

	g := graphic.Generated{
		ID:          uuid.NewString(),
		Kind:        j.kind,
		LayoutID:    tmpl.ID,
		Theme:       theme.Name,
		ImageData:   data,
		GeneratedAt: s.deps.Now().UTC(),
	}
	if j.player != nil {
		g.PlayerID = j.player.ID
		g.PlayerName = j.player.Name
		g.Number = j.player.Number
	}
	if s.deps.Store != nil {
		if err := s.deps.Store.Save(ctx, g); err != nil {
			return graphic.Generated{}, fmt.Errorf("store graphic: %w", err)
		}
	}
	return g, nil
}

func (s *Service) selectLayout(j job) (layout.Template, error) {
	id := j.opts.LayoutID
	if id == 0 {
		var eligible []int
		for _, e := range profiles[j.kind].eligible {
			if _, ok := s.deps.Catalog.Get(e); ok {
				eligible = append(eligible, e)
			}
		}
		if len(eligible) == 0 {
			eligible = s.deps.Catalog.IDs()
		}
		id = s.deps.Picker(j.kind, j.key, eligible)
	}
	t, ok := s.deps.Catalog.Get(id)
	if !ok {
		return layout.Template{}, &layout.LayoutFormatError{Template: fmt.Sprintf("layout-%d", id), Reason: "not in catalog"}
	}
	return t, nil
}

// loadImages fetches every image the blocks draw. The first failure aborts
// the whole post.
func (s *Service) loadImages(ctx context.Context, blocks []layout.Block, j job, c *imagepkg.Content) error {
	needPhoto, needSecond, needLogo := imagepkg.RequiredImages(blocks)
	if needPhoto && len(j.photoRefs) == 0 {
		return &ContentNotFoundError{What: "photo"}
	}

	g, gctx := errgroup.WithContext(ctx)
	load := func(ref string, dst *image.Image) {
		g.Go(func() error {
			img, err := s.deps.Assets.Load(gctx, ref)
			if err != nil {
				return err
			}
			*dst = img
			return nil
		})
	}
	if needPhoto {
		load(j.photoRefs[0], &c.Photo)
	}
	if needSecond && len(j.photoRefs) > 1 {
		load(j.photoRefs[1], &c.SecondPhoto)
	}
	if needLogo {
		load(s.deps.LogoRef, &c.Logo)
		if s.deps.WhiteLogoRef != "" {
			load(s.deps.WhiteLogoRef, &c.WhiteLogo)
		}
	}
	return g.Wait()
}
