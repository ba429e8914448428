package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/databrowser/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "TOML config file")
	baseURL := flag.String("base-url", "", "API base address")
	theme := flag.String("theme", "", "classic, neon or mono")
	strict := flag.Bool("strict", false, "treat non-2xx responses as failures")
	noColor := flag.Bool("no-color", false, "disable colour output")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args means browse.
	code := cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		BaseURL:    *baseURL,
		Theme:      *theme,
		Strict:     *strict,
		NoColor:    *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
