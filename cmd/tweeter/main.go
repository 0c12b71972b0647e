// Command tweeter runs a small world of accounts tweeting and liking
// each other concurrently, then prints what everyone received.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/inconshreveable/log15"
	"github.com/vincentAlen/observer/internal/config"
	"github.com/vincentAlen/observer/internal/elapsed"
	"github.com/vincentAlen/observer/internal/tweeter"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML world description")
	tweets := flag.Int("tweets", 0, "tweets per account (overrides the config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides the config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	if *tweets > 0 {
		cfg.Tweets = *tweets
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		return 1
	}

	lvl, err := log15.LvlFromString(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log15.Root().SetHandler(log15.LvlFilterHandler(lvl, log15.StreamHandler(os.Stderr, log15.LogfmtFormat())))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := tweeter.Default()
	accounts, err := svc.Populate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	timer := elapsed.NewTimer()
	timer.Start()
	err = svc.Run(ctx, accounts, cfg.Tweets)
	timer.Stop()
	if err != nil {
		log15.Error("world stopped", "err", err, "after", timer.Short())
		return 1
	}

	stats := svc.Stats()
	fmt.Printf("%d tweets, %d likes in %s\n", stats.Tweets, stats.Likes, timer.Format())
	for _, a := range accounts {
		fmt.Printf("%-10s received %d tweets, %d likes\n", a.Name(), a.Tweets(), a.Likes())
	}
	return 0
}
