package posts

import (
	"errors"
	"fmt"

	imagepkg "github.com/youruser/clubposts/internal/image"
	"github.com/youruser/clubposts/internal/layout"
)

// ContentNotFoundError reports content a post needs but that does not exist,
// such as an unknown player id.
type ContentNotFoundError struct {
	What string
	ID   string
	Err  error
}

func (e *ContentNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.What)
	}
	return fmt.Sprintf("%s %q not found", e.What, e.ID)
}

func (e *ContentNotFoundError) Unwrap() error { return e.Err }

// ErrorCode classifies a failed generation for API callers.
type ErrorCode string

const (
	CodeLayoutFormat    ErrorCode = "LAYOUT_FORMAT"
	CodeAssetLoad       ErrorCode = "ASSET_LOAD"
	CodeContentNotFound ErrorCode = "CONTENT_NOT_FOUND"
	CodeFailed          ErrorCode = "GENERATION_FAILED"
)

func codeOf(err error) ErrorCode {
	var (
		lfe *layout.LayoutFormatError
		ale *imagepkg.AssetLoadError
		cnf *ContentNotFoundError
	)
	switch {
	case errors.As(err, &cnf):
		return CodeContentNotFound
	case errors.As(err, &ale):
		return CodeAssetLoad
	case errors.As(err, &lfe):
		return CodeLayoutFormat
	default:
		return CodeFailed
	}
}
