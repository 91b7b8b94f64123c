package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/carlot/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/carlot/config.toml)")
	envPath := flag.String("env", ".env", "dotenv file with CARLOT_* variables (optional)")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
		PrefsPath:  *prefsPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "carlot: %v\n", err)
		return 1
	}
	return 0
}
