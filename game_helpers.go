package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// game is the driver-owned simulation state; the engine itself holds none
type game struct {
	config     utils.Config
	stepper    *model.Stepper
	cells      model.CellSet
	viewport   model.Viewport
	rng        *rand.Rand
	history    model.History
	generation int
}

// initializeGame validates the configuration and seeds the first generation
func initializeGame(config utils.Config) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid configuration")
	}
	rs, err := config.RuleSet()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] invalid rule set")
	}

	var pool *model.SetPool
	if config.UseMemoryPool {
		pool = model.NewSetPool()
	}
	stepper, err := model.NewStepper(rs, pool, config.Workers)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		stepper:  stepper,
		viewport: config.Viewport(),
		rng:      model.NewRNG(seed),
	}
	g.reseed()
	return g, nil
}

// reseed clears the board and adds the configured patterns plus random soup
func (g *game) reseed() {
	g.cells = model.NewCellSet()
	g.history.Reset()
	for _, p := range g.config.Patterns {
		// names were checked by Config.Validate
		pattern, _ := model.LookupPattern(p.Name)
		model.Spawn(pattern, g.viewport.Origin.Add(model.Coord{X: p.X, Y: p.Y}), &g.cells)
	}
	model.Randomize(&g.cells, g.viewport, g.config.RandomDensity, g.rng)
}

// advance replaces the live set with the next generation
func (g *game) advance() {
	if g.config.UseParallel {
		g.cells = g.stepper.StepParallel(g.cells)
	} else {
		g.cells = g.stepper.Step(g.cells)
	}
	g.generation++
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v | Rules: %s\n",
		g.config.UseMemoryPool, g.config.UseParallel, g.stepper.Rules())
	fmt.Printf("Viewport: %dx%d | Initial living cells: %d\n",
		g.viewport.Width, g.viewport.Height, g.cells.Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(g *game, lastFrameTime time.Time, stats *utils.Stats) (int, string, bool) {
	livingCells := g.cells.Len()

	// Update performance stats
	stats.Update(g.generation, g.cells, time.Since(lastFrameTime))

	// Check for stagnation before recording this generation
	isStagnant := g.history.IsStagnant(g.cells)
	g.history.Record(g.cells)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, livingCells int, status string, stats *utils.Stats, lastRestartGen int) {
	fmt.Printf("Gen: %d | Living: %d | Status: %s | Bounding box: %d cells\n",
		g.generation, livingCells, status, stats.BoundingBoxSize)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if g.generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", g.generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshInterval > 0 && generation > 0 && generation%config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board in place
func restartGame(g *game) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	g.reseed()

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", g.cells.Len())
	time.Sleep(2 * time.Second)
}
