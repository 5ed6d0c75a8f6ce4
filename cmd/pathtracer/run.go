package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/corelog"
	"github.com/df07/go-pathtracer/internal/present"
	"github.com/df07/go-pathtracer/pkg/cubemap"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var numWorkers int

func init() {
	runCmd.Flags().IntVar(&numWorkers, "workers", 0, "worker count (0 = use the config file's value; 0 there means GOMAXPROCS)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive path tracer window",
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if numWorkers > 0 {
		cfg.Workers = numWorkers
	}

	logger = corelog.NewConsoleLogger("pathtracer")

	cm, err := cubemap.LoadDir(cfg.Skybox)
	if err != nil {
		return err
	}

	sc, err := buildDefaultScene()
	if err != nil {
		return err
	}

	cam := renderer.NewCamera(cfg.Camera.InitialPosition())
	rc := renderer.NewContext(sc, cm, cam, cfg.IntegratorConfig(), logger)

	pool := renderer.NewWorkerPool(cfg.Workers)
	logger.Printf("starting %d workers, skybox=%s", pool.NumWorkers(), cfg.Skybox)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pool.Run(gctx, rc)
	})

	game := present.NewGame(rc, cfg.Window.Width, cfg.Window.Height, cfg.Window.Scale)
	logger.Printf("session %s", game.Session())

	if err := present.Run(game, "pathtracer"); err != nil {
		stop()
		_ = g.Wait()
		return err
	}

	stop()
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
