package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("loading config: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatalf("refusing to start: %v", err)
	}

	if config.Interactive {
		if err = runInteractive(g); err != nil {
			log.Fatalf("interactive mode: %v", err)
		}
		return
	}
	runPlain(g)
}

// runPlain is the non-interactive loop: print, step, sleep
func runPlain(g *game) {
	displayGameInfo(g)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				g.generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, status, isStagnant := updateGameState(g, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, livingCells, status, stats, lastRestartGen)
		renderer.Display(g.cells, g.viewport)

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, g.generation, g.config)

		if shouldRestart && g.config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			restartGame(g)
			lastRestartGen = g.generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			model.InjectRandomLife(&g.cells, g.viewport, g.config.InjectionCount, g.rng)
		}

		g.advance()

		time.Sleep(g.config.FrameRate)
	}
}
