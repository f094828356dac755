package main

import (
	"fmt"
	"os"

	"github.com/diegok/swarmpong/internal/app"
	"github.com/diegok/swarmpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  swarmpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --balls <n>          Balls per batch (default: 100000)")
	fmt.Fprintln(os.Stderr, "  --launch-delay <s>   Seconds before a fresh batch launches (default: 10)")
	fmt.Fprintln(os.Stderr, "  --mute               Disable sound")
	fmt.Fprintln(os.Stderr, "  --seed <n>           Random seed, 0 = time-based (default: 0)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  w / up arrow         Move paddle up")
	fmt.Fprintln(os.Stderr, "  s / down arrow       Move paddle down")
	fmt.Fprintln(os.Stderr, "  q / ESC              Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  swarmpong")
	fmt.Fprintln(os.Stderr, "  swarmpong --balls 1000 --launch-delay 3")
}
