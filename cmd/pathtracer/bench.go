package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/df07/go-pathtracer/internal/config"
	"github.com/df07/go-pathtracer/internal/corelog"
	"github.com/df07/go-pathtracer/pkg/cubemap"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var (
	benchPasses     int
	benchOut        string
	benchCPUProfile string
)

func init() {
	benchCmd.Flags().IntVar(&benchPasses, "passes", 32, "number of presentation ticks (10ms apart) before saving the final frame")
	benchCmd.Flags().StringVar(&benchOut, "out", "render.png", "output PNG path")
	benchCmd.Flags().StringVar(&benchCPUProfile, "cpuprofile", "", "write CPU profile to file")
	rootCmd.AddCommand(benchCmd)
}

// benchCmd renders headlessly for a fixed number of presentation ticks
// while the worker pool runs, and writes a single PNG, for profiling the
// rendering core without the display collaborator.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Render headlessly for a fixed number of presentation ticks and save a PNG",
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCPUProfile != "" {
		f, err := os.Create(benchCPUProfile)
		if err != nil {
			return errors.Wrap(err, "bench: creating CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return errors.Wrap(err, "bench: starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger = corelog.NewConsoleLogger("pathtracer-bench")

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
	logger.Printf("bench: %d workers, %d presentation ticks", pool.NumWorkers(), benchPasses)

	start := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pool.Run(ctx, rc) }()

	// Present once per tick so the accumulator actually receives worker
	// merges (Present is also what allocates the frame buffers); passes
	// here count presentation ticks, not raw worker iterations, which is
	// close enough for a bench loop.
	for i := 0; i < benchPasses; i++ {
		rc.Present(1, cfg.Window.Width, cfg.Window.Height)
		time.Sleep(10 * time.Millisecond)
	}
	frame := rc.Present(1, cfg.Window.Width, cfg.Window.Height)

	cancel()
	if werr := <-done; werr != nil && werr != context.Canceled {
		logger.Printf("worker pool stopped with error: %v", werr)
	}

	logger.Printf("bench completed in %v", time.Since(start))

	return writePNG(benchOut, frame)
}

func writePNG(path string, frame renderer.Frame) error {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for i, c := range frame.Pix {
		img.Set(i%frame.Width, i/frame.Width, color.RGBA{
			R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 255,
		})
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "bench: creating %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "bench: encoding %s", path)
	}
	return nil
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
