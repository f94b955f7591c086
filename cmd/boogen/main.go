// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"boogen/internal/boogie"
	"boogen/internal/codegen"
	"boogen/internal/config"
	"boogen/internal/errors"
	"boogen/internal/intrinsic"
	"boogen/internal/irtext"
	"boogen/internal/layout"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML file with translation options")
	dump := flag.Bool("print", false, "print the translated program to stdout")
	verbosity := flag.Int("v", 0, "log verbosity (1 = debug)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: boogen [flags] <file.mir>...")
		flag.PrintDefaults()
		return 1
	}

	commonlog.Configure(*verbosity, nil)
	startTime := time.Now()

	opts := config.Default()
	if *configPath != "" {
		var err error
		opts, err = config.Load(*configPath)
		if err != nil {
			color.Red("%v", err)
			return 1
		}
	}

	ctx := codegen.NewContext(opts, intrinsic.Standard(), layout.New())
	reporter := errors.NewReporter(true)

	translated, failed := 0, 0
	badInput := false
	for _, path := range flag.Args() {
		source, err := os.ReadFile(path)
		if err != nil {
			color.Red("failed to read file: %v", err)
			badInput = true
			continue
		}

		bodies, err := irtext.Parse(path, string(source))
		if err != nil {
			color.Red("%s", irtext.FormatError(string(source), err))
			badInput = true
			continue
		}

		for _, body := range bodies {
			if err := body.Validate(); err != nil {
				fmt.Print(reporter.FormatFailure(body.Name, err))
				failed++
				continue
			}
			proc, err := ctx.Translate(body)
			if err != nil {
				fmt.Print(reporter.FormatFailure(body.Name, err))
				failed++
				continue
			}
			if proc == nil {
				// A verification hook: replaced at its call sites, so it
				// has no procedure of its own.
				continue
			}
			ctx.AddProcedure(proc)
			translated++
		}
	}

	if *dump {
		fmt.Print(boogie.Dump(ctx.Program()))
		fmt.Println()
	}
	fmt.Printf("%s in %s\n", reporter.FormatSummary(translated, failed), formatDuration(time.Since(startTime)))

	if failed > 0 || badInput {
		return 1
	}
	return 0
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}
