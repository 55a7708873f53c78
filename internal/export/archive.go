package export

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/youruser/clubposts/internal/graphic"
	imagepkg "github.com/youruser/clubposts/internal/image"
)

// WritePNG writes the PNG carried by g to w.
func WritePNG(w io.Writer, g graphic.Generated) error {
	b, err := imagepkg.DataURLBytes(g.ImageData)
	if err != nil {
		return fmt.Errorf("graphic %s: %w", g.ID, err)
	}
	_, err = w.Write(b)
	return err
}

// WriteZip writes every graphic as a PNG entry of one zip archive. Clashing
// file names get a -2, -3... suffix. The archive is closed even when an
// entry fails, so w holds a readable zip of the entries before it.
func WriteZip(w io.Writer, gs []graphic.Generated) (err error) {
	zw := zip.NewWriter(w)
	defer func() {
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
	}()
	used := map[string]int{}
	for _, g := range gs {
		name := FileName(g)
		used[name]++
		if n := used[name]; n > 1 {
			name = fmt.Sprintf("%s-%d.png", strings.TrimSuffix(name, ".png"), n)
		}
		f, err := zw.Create(name)
		if err != nil {
			return err
		}
		if err := WritePNG(f, g); err != nil {
			return err
		}
	}
	return nil
}
