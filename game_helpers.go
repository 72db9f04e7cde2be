package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/api"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/transport/websocket"
	"github.com/sheikhrachel/go-life/utils"
)

// errMaxGenerations stops the run loops once the configured generation limit is hit
var errMaxGenerations = errors.New("reached maximum generations")

// game drives one shared world: ticking, stats and automatic restarts.
// mu guards stats and stagnation tracking; it is always taken before the world's own lock.
type game struct {
	config utils.Config
	world  *model.SharedWorld
	pool   *model.FramePool

	mu            sync.Mutex
	stats         *utils.Stats
	stagnation    *model.Stagnation
	stagnantCount int
	lastFrameTime time.Time
}

func newGame(config utils.Config) *game {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	w := model.NewRandomWithSource(config.Width, config.Height, config.AliveProbability, rng)
	if config.Patterns {
		w.SeedPatterns()
	}

	g := &game{
		config:        config,
		world:         model.NewSharedWorld(w),
		pool:          model.NewFramePool(),
		stats:         utils.NewStats(),
		stagnation:    model.NewStagnation(0),
		lastFrameTime: time.Now(),
	}

	log.Printf("Grid: %dx%d | Alive probability: %.2f | Seed: %d | Patterns: %v",
		config.Width, config.Height, config.AliveProbability, seed, config.Patterns)
	return g
}

// Tick advances one generation and records it, as the frame loop does
func (g *game) Tick() int {
	generation, err := g.advance()
	if err != nil {
		log.Printf("Generation %d: %v", generation, err)
	}
	return generation
}

// Refresh restarts the world on request, counting it like an automatic restart
func (g *game) Refresh() {
	g.mu.Lock()
	defer g.mu.Unlock()

	log.Printf("Restarting on request")
	g.restart()
}

// advance ticks the world and records the new generation
func (g *game) advance() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	generation := g.world.Tick()
	return generation, g.observe(generation)
}

// afterTick records a generation the world was advanced to elsewhere
func (g *game) afterTick(generation int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.observe(generation)
}

// observe updates stats and stagnation tracking after a tick and restarts the world
// when it died out or settled. It returns errMaxGenerations once the limit is reached.
// Callers hold g.mu.
func (g *game) observe(generation int) error {
	var (
		population int
		hash       string
	)
	g.world.View(func(w *model.World, _ int) {
		population = w.Population()
		hash = w.Hash()
	})

	now := time.Now()
	g.stats.Update(population, now.Sub(g.lastFrameTime))
	g.lastFrameTime = now

	if g.stagnation.Observe(hash) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	if g.config.MaxGenerations > 0 && g.stats.TotalGenerations >= g.config.MaxGenerations {
		return errMaxGenerations
	}

	if reason := g.restartReason(population); reason != "" && g.config.AutoRestart {
		log.Printf("Restarting at generation %d due to %s", generation, reason)
		g.restart()
	}
	return nil
}

// restartReason determines if the world should be refreshed
func (g *game) restartReason(population int) string {
	if population == 0 {
		return "extinction"
	}
	if g.stagnantCount >= g.config.StagnationThreshold {
		return "stagnation"
	}
	return ""
}

// restart re-randomises the world under its lock. Callers hold g.mu.
func (g *game) restart() {
	var seed func(w *model.World)
	if g.config.Patterns {
		seed = (*model.World).SeedPatterns
	}
	g.world.Regenerate(seed)

	g.stagnation.Reset()
	g.stagnantCount = 0
	g.stats.Restarted()
}

// loop ticks the world once per frame and hands each new generation to onFrame
func (g *game) loop(ctx context.Context, onFrame func(generation int)) error {
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		generation, err := g.advance()
		onFrame(generation)
		if err != nil {
			return err
		}
	}
}

// summary is the final stats line printed when a run ends
func (g *game) summary() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fmt.Sprintf("Final stats: %d generations in %.1f seconds | %.1f gen/sec | %.1f avg population | %d restarts",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds(),
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Restarts)
}

// runTerminal redraws the world as text after every tick until ctx ends, q is entered
// or the generation limit is reached
func runTerminal(ctx context.Context, config utils.Config, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g := newGame(config)
	renderer := &model.TerminalRenderer{Out: out}

	// not part of the loop's lifetime: a blocked read must not hold up shutdown
	go watchQuit(in, cancel)

	err := g.loop(ctx, func(generation int) {
		snap, _ := g.world.Snapshot(g.pool)
		defer g.pool.Put(snap)

		renderer.Clear()
		renderer.Status(generation, snap)
		renderer.Display(snap)
	})
	log.Print(g.summary())
	if errors.Is(err, errMaxGenerations) {
		log.Printf("Reached maximum generations limit (%d)", config.MaxGenerations)
		return nil
	}
	return err
}

// watchQuit cancels the run when a line starting with q is read
func watchQuit(in io.Reader, cancel context.CancelFunc) {
	if in == nil {
		return
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(scanner.Text())), "q") {
			cancel()
			return
		}
	}
}

// runServe ticks the world and streams every generation to WebSocket clients while
// serving the HTTP API
func runServe(ctx context.Context, config utils.Config) error {
	g := newGame(config)
	hub := websocket.NewHub()

	srv := &http.Server{
		Addr:         config.Addr,
		Handler:      api.NewServer(g.world, g, g.pool, hub, config.Scale),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		hub.Run(ctx)
		return nil
	})

	eg.Go(func() error {
		log.Printf("Serving frames on http://%s (websocket at /ws)", config.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "[runServe] failed to listen on %s", config.Addr)
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	eg.Go(func() error {
		return g.loop(ctx, func(generation int) {
			snap, _ := g.world.Snapshot(g.pool)
			defer g.pool.Put(snap)
			hub.BroadcastFrame(snap, generation)
		})
	})

	err := eg.Wait()
	log.Print(g.summary())
	if errors.Is(err, errMaxGenerations) {
		return nil
	}
	return err
}

// runWindow hands the world to the pixel window; the window ticks once per frame
func runWindow(ctx context.Context, config utils.Config) error {
	g := newGame(config)

	win := render.NewWindow(g.world, g.pool, config.Scale)
	win.OnFrame = func(generation int) bool {
		if ctx.Err() != nil {
			return true
		}
		return g.afterTick(generation) != nil
	}
	win.OnRefresh = g.Refresh

	err := render.RunWindow("Game of Life", win, config.FrameRate)
	log.Print(g.summary())
	return err
}
