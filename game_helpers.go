package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame builds the engine and applies any pattern requested by config
func initializeGame(config utils.Config) (*model.Engine, *utils.Stats, error) {
	fill, err := config.FillMode()
	if err != nil {
		return nil, nil, err
	}

	opts := []model.Option{
		model.WithBoundaryMode(config.Boundary),
		model.WithWorkers(config.Workers),
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}

	engine, err := model.NewEngine(config.Rows, config.Cols, fill, opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to build engine")
	}

	if config.PatternFile != "" {
		if err = loadPattern(engine, config.PatternFile); err != nil {
			// A bad pattern file is reported but playback continues on the current grid.
			fmt.Printf("Could not load pattern: %v\n", err)
		}
	}

	if config.PlacePattern != "" {
		pattern, err := model.BuiltinPattern(config.PlacePattern)
		if err != nil {
			return nil, nil, errors.Wrap(err, "[initializeGame]")
		}
		engine.PlacePattern(config.PlaceRow, config.PlaceCol, pattern)
	}

	return engine, utils.NewStats(), nil
}

// loadPattern replaces the engine grid with a saved pattern file
func loadPattern(engine *model.Engine, filename string) error {
	pattern, err := model.LoadPatternFile(filename)
	if err != nil {
		return err
	}
	return engine.LoadState(pattern)
}

// savePattern writes the engine grid to a pattern file
func savePattern(engine *model.Engine, filename string) error {
	return model.SavePatternFile(filename, engine.ExportState())
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, engine *model.Engine) {
	fmt.Printf("Boundary: %s | Workers: %d | Memory Pool: %v\n",
		engine.BoundaryMode(), config.Workers, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		engine.Rows(), engine.Cols(), engine.AliveCount())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and returns its status
func updateGameState(
	engine *model.Engine,
	history *model.History,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (float64, string, bool) {
	livingCells := engine.AliveCount()
	density := utils.Density(livingCells, engine.Rows(), engine.Cols())

	stats.Update(engine.Generation(), livingCells, time.Since(lastFrameTime))

	hash := engine.Hash()
	isStagnant := history.IsStagnant(hash)
	history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(engine *model.Engine, density float64, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec | Avg Pop: %.1f\n",
		engine.Generation(), engine.AliveCount(), density, status,
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// checkStopConditions determines if playback should stop
func checkStopConditions(engine *model.Engine, stagnantCount int, config utils.Config) (bool, string) {
	if engine.AliveCount() == 0 {
		return true, "extinction"
	}
	if config.StopOnStagnation && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// displayFinalStats summarizes the run
func displayFinalStats(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}
