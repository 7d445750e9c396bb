package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/uomul/internal/config"
	"github.com/udisondev/uomul/internal/mul/tiledata"
)

const ConfigPath = "config/tiledump.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer) *cli.App {
	var cfg config.TileDump

	return &cli.App{
		Name:      "tiledump",
		Usage:     "inspect tiledata.mul land and static tile tables",
		Version:   "1.0.0",
		Writer:    w,
		ErrWriter: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"UOMUL_CONFIG"},
				Value:   ConfigPath,
				Usage:   "path to YAML config",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override config log level (debug, info, warn, error)",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.LoadTileDump(c.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if lvl := c.String("log-level"); lvl != "" {
				cfg.LogLevel = lvl
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: parseLogLevel(cfg.LogLevel),
			})))
			slog.Debug("config loaded", "data_dir", cfg.DataDir, "file", cfg.TileDataFile, "workers", cfg.Workers)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "decode files and print table summaries",
				ArgsUsage: "[FILE...]",
				Action: func(c *cli.Context) error {
					paths := c.Args().Slice()
					if len(paths) == 0 {
						paths = []string{cfg.Path()}
					}
					return runStats(c.Context, c.App.Writer, paths, cfg.Workers)
				},
			},
			{
				Name:      "land",
				Usage:     "print land tile records",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Value: -1, Usage: "only this tile id"},
				},
				Action: func(c *cli.Context) error {
					return dumpLand(c.App.Writer, filePath(c, cfg), c.Int("id"))
				},
			},
			{
				Name:      "static",
				Usage:     "print static tile records",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "id", Value: -1, Usage: "only this tile id"},
				},
				Action: func(c *cli.Context) error {
					return dumpStatic(c.App.Writer, filePath(c, cfg), c.Int("id"))
				},
			},
		},
	}
}

func filePath(c *cli.Context, cfg config.TileDump) string {
	if c.NArg() > 0 {
		return c.Args().First()
	}
	return cfg.Path()
}

// fileStats summarizes one decoded file.
type fileStats struct {
	Path             string
	Land             int
	Static           int
	ImpassableLand   int
	ImpassableStatic int
	MaxHeight        uint8
}

func summarize(path string, td *tiledata.TileData) fileStats {
	s := fileStats{
		Path:   path,
		Land:   td.LandTileCount(),
		Static: td.StaticTileCount(),
	}
	for _, tile := range td.LandTiles() {
		if tile.Impassable() {
			s.ImpassableLand++
		}
	}
	for _, tile := range td.StaticTiles() {
		if tile.Impassable() {
			s.ImpassableStatic++
		}
		s.MaxHeight = max(s.MaxHeight, tile.Height)
	}
	return s
}

// runStats decodes every file concurrently, at most workers at a time.
func runStats(ctx context.Context, w io.Writer, paths []string, workers int) error {
	results := make([]fileStats, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			td, err := tiledata.Load(path)
			if err != nil {
				return err
			}
			results[i] = summarize(path, td)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range results {
		fmt.Fprintf(w, "%s: land=%d static=%d impassable_land=%d impassable_static=%d max_height=%d\n",
			s.Path, s.Land, s.Static, s.ImpassableLand, s.ImpassableStatic, s.MaxHeight)
	}
	return nil
}

// errDone stops a walk once the requested record has been printed.
var errDone = errors.New("done")

func dumpLand(w io.Writer, path string, only int) error {
	err := tiledata.WalkFile(path, tiledata.VisitorFuncs{
		Land: func(id int, rec tiledata.LandRecord) error {
			if only >= 0 && id != only {
				return nil
			}
			fmt.Fprintf(w, "0x%04X\t%q\ttexture=0x%04X\t%v\n", id, rec.Name(), rec.TextureID, rec.Flags)
			if only >= 0 {
				return errDone
			}
			return nil
		},
	})
	if errors.Is(err, errDone) {
		return nil
	}
	return err
}

func dumpStatic(w io.Writer, path string, only int) error {
	err := tiledata.WalkFile(path, tiledata.VisitorFuncs{
		Static: func(id int, rec tiledata.StaticRecord) error {
			if only >= 0 && id != only {
				return nil
			}
			fmt.Fprintf(w, "0x%04X\t%q\theight=%d weight=%d quantity=%d hue=%d anim=0x%04X\t%v\n",
				id, rec.Name(), rec.Height, rec.Weight, rec.Quantity, rec.Hue, rec.AnimID, rec.Flags)
			if only >= 0 {
				return errDone
			}
			return nil
		},
	})
	if errors.Is(err, errDone) {
		return nil
	}
	return err
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
