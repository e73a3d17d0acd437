// pascman-feed serves a map to "pascman -stdin" over the frame protocol.
//
// Usage:
//
//	mkfifo keys
//	pascman-feed -map map.txt -keys keys | pascman -stdin > keys
//	pascman-feed -generate -seed 7 -keys keys | pascman -stdin > keys
//
// Without -keys only the map broadcast is written.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pascman/internal/component"
	"pascman/internal/gamemap"
	"pascman/internal/generate"
	"pascman/internal/protocol"
)

func main() {
	mapPath := flag.String("map", "map.txt", "map description file")
	encoding := flag.String("encoding", "", `map text encoding ("" or "cp437")`)
	player := flag.Uint("player", 1, "player number sent in the registration")
	keys := flag.String("keys", "", "file or fifo to read direction records from")
	gen := flag.Bool("generate", false, "serve a randomly generated maze instead of -map")
	seed := flag.Int64("seed", 0, "generator seed (0 picks one from the clock)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := source{path: *mapPath, encoding: *encoding, generate: *gen, seed: *seed}
	if err := run(ctx, src, uint32(*player), *keys, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// source says where the served layout comes from.
type source struct {
	path     string
	encoding string
	generate bool
	seed     int64
}

func (s source) layout() (*gamemap.Layout, error) {
	if !s.generate {
		return gamemap.Load(s.path, gamemap.Options{Encoding: s.encoding})
	}
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return generate.Generate(generate.DefaultConfig(rand.New(rand.NewSource(seed))))
}

func run(ctx context.Context, src source, player uint32, keysPath string, out io.Writer) error {
	layout, err := src.layout()
	if err != nil {
		return err
	}
	var keys io.Reader
	if keysPath != "" {
		kf, err := os.Open(keysPath)
		if err != nil {
			return fmt.Errorf("open keys: %w", err)
		}
		defer kf.Close()
		keys = kf
	}
	return serve(ctx, newFeeder(player, layout), keys, out)
}

// serve writes the map broadcast, then one batch of frames per direction
// read from keys until keys ends or ctx is done.
func serve(ctx context.Context, f *feeder, keys io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	if err := writeAll(w, f.hello()); err != nil {
		return err
	}
	if keys == nil {
		return nil
	}

	dirs := make(chan component.Direction)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(dirs)
		return readDirections(gctx, keys, dirs)
	})
	g.Go(func() error {
		for d := range dirs {
			if err := writeAll(w, f.step(d)); err != nil {
				return err
			}
		}
		return nil
	})
	return g.Wait()
}

func readDirections(ctx context.Context, r io.Reader, dirs chan<- component.Direction) error {
	var rec [4]byte
	for {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read keys: %w", err)
		}
		d, err := protocol.DecodeDirection(rec[:])
		if err != nil {
			continue
		}
		select {
		case dirs <- d:
		case <-ctx.Done():
			return nil
		}
	}
}

func writeAll(w *bufio.Writer, msgs []protocol.Message) error {
	for _, m := range msgs {
		if err := protocol.WriteFrame(w, m); err != nil {
			return err
		}
	}
	return w.Flush()
}
