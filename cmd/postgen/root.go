package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/clubposts/internal/app"
	"github.com/youruser/clubposts/internal/config"
	"github.com/youruser/clubposts/internal/export"
	"github.com/youruser/clubposts/internal/logger"
	"github.com/youruser/clubposts/internal/posts"
	"github.com/youruser/clubposts/internal/util"
)

var (
	configDir string
	outDir    string
	themeName string
	layoutID  int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:           "postgen",
	Short:         "Render matchday, training and player spotlight posts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "out", "output directory")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "colour theme (classic, deep, bright)")
	rootCmd.PersistentFlags().IntVar(&layoutID, "layout", 0, "layout id, 0 picks one")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(matchdayCmd, trainingCmd, spotlightCmd)
}

func options() posts.Options {
	return posts.Options{Theme: themeName, LayoutID: layoutID}
}

// withApp loads config, builds the service and hands it to fn.
func withApp(ctx context.Context, fn func(*app.App) posts.Result) error {
	var paths []string
	if configDir != "" {
		paths = append(paths, configDir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(level, "console")
	defer log.Sync()

	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	r := fn(a)
	if !r.Success {
		return fmt.Errorf("%s: %s", r.ErrorCode, r.Error)
	}

	var buf bytes.Buffer
	if err := export.WritePNG(&buf, *r.Graphic); err != nil {
		return err
	}
	path := filepath.Join(outDir, export.FileName(*r.Graphic))
	if err := util.WriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	log.Info("post written", zap.String("path", path), zap.Int("layout", r.LayoutID))
	fmt.Println(path)
	return nil
}
