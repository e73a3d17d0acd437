// pascman is a terminal grid pursuit game.
//
// Usage:
//
//	pascman [-config pascman.toml] [-map map.txt | -generate] [-stdin]
//
// With -stdin the world is driven by protocol frames read from standard
// input and direction keys are written to standard output:
//
//	pascman-feed -map map.txt | pascman -stdin
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pascman/internal/config"
	"pascman/internal/game"
	"pascman/internal/gamemap"
	"pascman/internal/generate"
	"pascman/internal/logging"
	"pascman/internal/protocol"
	"pascman/internal/render"
	"pascman/internal/term"
)

type options struct {
	config   string
	mapPath  string
	stdin    bool
	generate bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("pascman", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "path to a .toml or .yaml config file")
	fs.StringVar(&o.mapPath, "map", "", "map description file (overrides game.map)")
	fs.BoolVar(&o.stdin, "stdin", false, "read protocol frames from stdin and write directions to stdout")
	fs.BoolVar(&o.generate, "generate", false, "play on a randomly generated maze instead of the map file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(o options) (*config.Config, error) {
	cfg, err := config.Load(o.config)
	if err != nil {
		return nil, err
	}
	if o.mapPath != "" {
		cfg.Game.Map = o.mapPath
	}
	if o.stdin {
		// Villains belong to the remote side.
		cfg.Game.VillainBehavior = config.BehaviorRemote
	}
	return cfg, nil
}

// loadLayout reads the configured map, or generates one. A remote-driven
// game starts from a blank protocol grid; the server's REGISTRATION and
// SPAWNs fill it in.
func loadLayout(cfg *config.Config, o options) (*gamemap.Layout, error) {
	if o.stdin {
		return &gamemap.Layout{Map: gamemap.New(cfg.Protocol.Width, cfg.Protocol.Height)}, nil
	}
	if !o.generate {
		return gamemap.Load(cfg.Game.Map, gamemap.Options{Encoding: cfg.Game.MapEncoding})
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generate.Generate(generate.DefaultConfig(rand.New(rand.NewSource(seed))))
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, o, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	layout, err := loadLayout(cfg, o)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	simOpts := []game.Option{game.WithLogger(log)}
	termOpts := []term.Option{term.WithLogger(log)}
	var queue *protocol.Queue
	if o.stdin {
		queue = protocol.NewQueue(cfg.Protocol.QueueSize)
		defer queue.Close()
		simOpts = append(simOpts, game.WithQueue(queue))
		termOpts = append(termOpts, term.WithDirections(stdout))
	}

	sim := game.New(layout, cfg, simOpts...)
	defer sim.Close()
	log.Info("game started",
		zap.String("map", cfg.Game.Map),
		zap.Bool("generated", o.generate),
		zap.Int("width", layout.Map.Width),
		zap.Int("height", layout.Map.Height),
		zap.Bool("stdin", o.stdin),
		zap.Stringer("run", sim.RunID()),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	frontend := term.New(screen, render.NewRenderer(screen, render.ThemeByName(cfg.Display.Theme)), sim, cfg.TickInterval(), termOpts...)
	g.Go(func() error {
		// Leaving the frontend ends the program.
		defer cancel()
		return frontend.Run(gctx)
	})

	if queue != nil {
		reader := protocol.NewReader(stdin)
		reader.OnMalformed = func(frame []byte, err error) {
			log.Warn("dropping malformed frame", zap.Binary("frame", frame), zap.Error(err))
		}
		// The pump may sit in a blocking read on stdin, so the group only
		// waits for its result while the game is running.
		pumped := make(chan error, 1)
		go func() { pumped <- protocol.Pump(gctx, reader, queue) }()
		g.Go(func() error {
			select {
			case err := <-pumped:
				if gctx.Err() != nil {
					return nil
				}
				if err == nil {
					log.Info("protocol stream ended")
				}
				return err
			case <-gctx.Done():
				return nil
			}
		})
	}

	return g.Wait()
}
