package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/vector-flow/internal/chime"
	"github.com/olivierh59500/vector-flow/internal/config"
	"github.com/olivierh59500/vector-flow/internal/scene"
	"github.com/olivierh59500/vector-flow/internal/sketch"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML settings file")
		startScene = flag.String("scene", "", "first scene: "+strings.Join(sketch.Names(), ", "))
		term       = flag.Bool("term", false, "render in the terminal instead of a window")
		snapshot   = flag.String("snapshot", "", "render headless to this PNG file and exit")
		frames     = flag.Int("frames", 120, "frames to simulate before a headless snapshot")
		seed       = flag.Int64("seed", 0, "random seed (0 uses the config or the clock)")
	)
	flag.Parse()

	conf := config.Default()
	if *configPath != "" {
		loaded, unknown, err := config.Load(*configPath)
		if err != nil {
			slog.Error("load config", "err", err)
			os.Exit(1)
		}
		conf = loaded
		for _, k := range unknown {
			slog.Warn("unknown config key", "key", k)
		}
	}
	if *startScene != "" {
		conf.Start = *startScene
	}
	if *seed != 0 {
		conf.Seed = *seed
	}
	if conf.Seed == 0 {
		conf.Seed = time.Now().UnixNano()
	}

	level, _ := conf.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	rng := rand.New(rand.NewSource(conf.Seed))
	logger.Debug("starting", "seed", conf.Seed, "width", conf.Width, "height", conf.Height)

	switch {
	case *snapshot != "":
		runSnapshot(conf, rng, logger, *snapshot, *frames)
	case *term:
		runTerminal(conf, rng, logger)
	default:
		runWindow(conf, rng, logger)
	}
}

// withChime plays a tone on every scene switch when sound is enabled.
func withChime(conf *config.Config, scenes *scene.Manager, logger *slog.Logger) func() {
	if !conf.Sound {
		return func() {}
	}
	c, err := chime.New()
	if err != nil {
		// Non-fatal, the sketch runs silently
		logger.Warn("audio unavailable", "err", err)
	}
	scenes.OnSwitch = func(_ *scene.Scene, i int) { c.Play(i) }
	return c.Close
}

func runWindow(conf *config.Config, rng *rand.Rand, logger *slog.Logger) {
	scenes := sketch.Build(conf, rng, logger)
	defer withChime(conf, scenes, logger)()

	ebiten.SetWindowSize(conf.Width, conf.Height)
	ebiten.SetWindowTitle("Vector Flow")
	ebiten.SetTPS(conf.TPS)

	if err := ebiten.RunGame(NewVisualizer(conf.Width, conf.Height, scenes, logger)); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

func runTerminal(conf *config.Config, rng *rand.Rand, logger *slog.Logger) {
	t, err := NewTerminal(conf.TPS, logger)
	if err != nil {
		logger.Error("terminal", "err", err)
		os.Exit(1)
	}
	defer t.Close()

	conf.Width, conf.Height = t.Size()
	conf.Scale = sketch.FitScale(conf.Width, conf.Height)
	scenes := sketch.Build(conf, rng, logger)
	defer withChime(conf, scenes, logger)()

	t.Attach(scenes)
	t.Run()
}

func runSnapshot(conf *config.Config, rng *rand.Rand, logger *slog.Logger, path string, frames int) {
	scenes := sketch.Build(conf, rng, logger)
	delta := 1 / float64(conf.TPS)
	for i := 1; i <= frames; i++ {
		scenes.Frame(scene.FrameEvent{Delta: delta, Time: float64(i) * delta, Count: i})
	}
	if err := writeSnapshot(scenes, conf.Width, conf.Height, path); err != nil {
		logger.Error("snapshot", "err", err)
		os.Exit(1)
	}
	logger.Info("snapshot saved", "path", path, "frames", frames)
}
