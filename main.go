package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configFile := flag.String("config", "config.json", "JSON configuration file")

	// Find -config first so file values become the defaults flags override.
	pre := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	scratch := utils.DefaultConfig()
	scratch.Bind(pre)
	pre.StringVar(configFile, "config", *configFile, "")
	_ = pre.Parse(os.Args[1:])

	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%s not loaded)\n", *configFile)
		config = utils.DefaultConfig()
	}
	config.Bind(flag.CommandLine)
	flag.Parse()

	if err = config.Validate(); err != nil {
		log.Fatal(err)
	}

	engine, stats, err := initializeGame(config)
	if err != nil {
		log.Fatal(err)
	}
	displayGameInfo(config, engine)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history       = model.NewHistory(0)
		stagnantCount = 0
		lastFrameTime = time.Now()
		ticker        = time.NewTicker(max(config.FrameRate, time.Millisecond))
	)
	defer ticker.Stop()

loop:
	for {
		frameStart := time.Now()
		density, status, isStagnant := updateGameState(engine, history, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(engine, density, status, stats)

		if stop, reason := checkStopConditions(engine, stagnantCount, config); stop {
			fmt.Printf("\nStopping: %s\n", reason)
			break
		}

		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			break loop
		case <-ticker.C:
		}

		engine.Step()
	}

	displayFinalStats(stats)

	if config.OutputFile != "" {
		if err = savePattern(engine, config.OutputFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Saved generation %d to %s\n", engine.Generation(), config.OutputFile)
	}
}
