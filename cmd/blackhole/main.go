//go:build !js
// +build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/simukka/blackhole/desktop"
	"github.com/simukka/blackhole/headless"
	"github.com/simukka/blackhole/logger"
	"github.com/simukka/blackhole/visual"
	"go.uber.org/zap"
)

func main() {
	var (
		hcfg       headless.Config
		enabled    bool
		growth     string
		fullscreen bool
		logLevel   string
	)
	flag.BoolVar(&enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&growth, "growth", "exponential", "Workload growth policy: exponential|stepped.")
	flag.IntVar(&hcfg.Width, "width", 1280, "Viewport width.")
	flag.IntVar(&hcfg.Height, "height", 720, "Viewport height.")
	flag.BoolVar(&fullscreen, "fullscreen", false, "Start the window fullscreen.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	flag.BoolVar(&hcfg.Mute, "mute", false, "Disable the frame rate pulse.")
	flag.Parse()

	log := logger.New(logger.Config{LogLevel: logLevel, ServiceName: "blackhole"})
	defer log.Sync()

	policy, err := visual.ParseGrowth(growth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	hcfg.Growth = policy
	hcfg.Logger = log

	if enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := headless.Run(ctx, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			log.Error("headless run failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := desktop.Run(desktop.Config{
		Width:      hcfg.Width,
		Height:     hcfg.Height,
		Fullscreen: fullscreen,
		Mute:       hcfg.Mute,
		Growth:     policy,
		Logger:     log,
	}); err != nil {
		log.Error("window closed with error", zap.Error(err))
		os.Exit(1)
	}
}
