package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"term-life/internal/app"
	"term-life/internal/core"
	"term-life/internal/render"
	"term-life/internal/seed"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	src, err := cfg.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	coords, err := readSeed(src)
	if err != nil {
		log.Fatal(err)
	}

	term, err := render.NewTerminal()
	if err != nil {
		log.Fatal(err)
	}

	initial, err := core.NewGridOfSize(term.Size())
	if err != nil {
		term.Close()
		log.Fatal(err)
	}
	if src.None() {
		core.FillRandom(initial, core.NewRNG(cfg.Seed), cfg.Density)
	}
	seed.Apply(coords, initial)

	ctx, cancel := context.WithCancel(context.Background())
	sigCtx, unregister := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer unregister()

	irq := app.NewInterrupt()
	loop := app.NewLoop(term, irq, core.NewFrameLimiter(app.FramePeriod), initial, cfg.Rune())

	var g errgroup.Group
	g.Go(func() error {
		<-sigCtx.Done()
		irq.Notify()
		return nil
	})
	g.Go(func() error {
		term.Listen(irq.Notify)
		irq.Close()
		return nil
	})
	g.Go(func() error {
		defer cancel()
		defer term.Close()
		return loop.Run()
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d generations, %d cells alive", loop.Generations(), loop.Current().Count())
}

// readSeed parses the seed coordinates before the terminal is taken over,
// so a bad seed fails without drawing anything.
func readSeed(src app.SeedSource) ([]seed.Coordinate, error) {
	if src.None() {
		return nil, nil
	}
	var r io.Reader = os.Stdin
	if !src.Stdin {
		f, err := os.Open(src.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	coords, err := seed.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return coords, nil
}
