package imagepkg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/youruser/clubposts/internal/util"
)

// AssetLoadError reports an image asset that could not be fetched or decoded.
type AssetLoadError struct {
	Ref string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %q: %v", e.Ref, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// AssetLoader resolves an asset reference (URL, path or data URL) to an image.
type AssetLoader interface {
	Load(ctx context.Context, ref string) (image.Image, error)
}

// DefaultCacheSize is the number of decoded assets Assets keeps.
const DefaultCacheSize = 128

var (
	ErrPathEscapes    = errors.New("path leaves the asset directory")
	ErrHostNotAllowed = errors.New("remote host not allowed")
)

// Assets loads images over HTTP, from disk or from data URLs. File
// references must stay inside the base directory and remote ones must
// name an allowed host. Decoded files and downloads are kept in an LRU
// cache; data URLs are never cached.
type Assets struct {
	client    *http.Client
	baseDir   string
	hosts     map[string]bool
	cacheSize int
	cache     *lru.Cache[string, image.Image]
}

type AssetsOption func(*Assets)

func WithHTTPClient(c *http.Client) AssetsOption {
	return func(a *Assets) { a.client = c }
}

// WithTimeout sets the HTTP timeout for remote assets.
func WithTimeout(d time.Duration) AssetsOption {
	return func(a *Assets) { a.client = &http.Client{Timeout: d} }
}

// WithBaseDir resolves file references against dir.
func WithBaseDir(dir string) AssetsOption {
	return func(a *Assets) { a.baseDir = dir }
}

// WithAllowedHosts lists the hosts remote assets may be fetched from.
// Without it every http(s) reference is refused.
func WithAllowedHosts(hosts ...string) AssetsOption {
	return func(a *Assets) {
		for _, h := range hosts {
			if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
				a.hosts[h] = true
			}
		}
	}
}

func WithCacheSize(n int) AssetsOption {
	return func(a *Assets) { a.cacheSize = n }
}

func NewAssets(opts ...AssetsOption) *Assets {
	a := &Assets{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseDir:   ".",
		hosts:     map[string]bool{},
		cacheSize: DefaultCacheSize,
	}
	for _, o := range opts {
		o(a)
	}
	if a.cacheSize <= 0 {
		a.cacheSize = DefaultCacheSize
	}
	a.cache, _ = lru.New[string, image.Image](a.cacheSize)
	return a
}

// CacheLen reports how many decoded assets are cached.
func (a *Assets) CacheLen() int { return a.cache.Len() }

func (a *Assets) Load(ctx context.Context, ref string) (image.Image, error) {
	if ref == "" {
		return nil, &AssetLoadError{Ref: ref, Err: fmt.Errorf("empty reference")}
	}
	if strings.HasPrefix(ref, "data:") {
		img, err := DecodeDataURL(ref)
		if err != nil {
			return nil, &AssetLoadError{Ref: "data URL", Err: err}
		}
		return img, nil
	}
	if img, ok := a.cache.Get(ref); ok {
		return img, nil
	}

	img, err := a.load(ctx, ref)
	if err != nil {
		return nil, &AssetLoadError{Ref: ref, Err: err}
	}
	a.cache.Add(ref, img)
	return img, nil
}

func (a *Assets) load(ctx context.Context, ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, err
		}
		if !a.hosts[strings.ToLower(u.Hostname())] {
			return nil, fmt.Errorf("%w: %s", ErrHostNotAllowed, u.Hostname())
		}
		return DownloadImage(ctx, a.remoteClient(), ref)
	}
	path, err := a.localPath(ref)
	if err != nil {
		return nil, err
	}
	return imaging.Open(path)
}

// localPath joins ref to the base directory. Absolute paths and paths
// climbing out of the directory are refused.
func (a *Assets) localPath(ref string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if !filepath.IsLocal(clean) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, ref)
	}
	return filepath.Join(a.baseDir, clean), nil
}

// remoteClient refuses redirects to hosts outside the allow list.
func (a *Assets) remoteClient() *http.Client {
	c := *a.client
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		if !a.hosts[strings.ToLower(req.URL.Hostname())] {
			return fmt.Errorf("%w: %s", ErrHostNotAllowed, req.URL.Hostname())
		}
		return nil
	}
	return &c
}

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

// MapAssets serves images from memory; missing keys fail like a 404.
type MapAssets map[string]image.Image

func (m MapAssets) Load(_ context.Context, ref string) (image.Image, error) {
	if img, ok := m[ref]; ok {
		return img, nil
	}
	return nil, &AssetLoadError{Ref: ref, Err: fmt.Errorf("not found")}
}
