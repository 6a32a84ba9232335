package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/rhino1998/calls/pkg/compiler/calls"
	"github.com/rhino1998/calls/pkg/fixture"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "prioritize",
		Usage: "Print the resolution tasks of call sites",
		Commands: []*cli.Command{
			{
				Name:      "tasks",
				Usage:     "Compute the prioritized tasks of every call site in a fixture",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "site",
						Usage: "only print the call site with this name",
					},
					&cli.BoolFlag{
						Name:    "debug",
						Aliases: []string{"d"},
					},
					&cli.StringFlag{
						Name:  "color",
						Value: "auto",
						Usage: "auto, always or never",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide exactly one fixture file as argument")
					}

					color, err := useColor(c.String("color"), os.Stdout)
					if err != nil {
						return err
					}

					logger := newLogger(c.Bool("debug"))

					prog, err := fixture.Load(logger, c.Args().First())
					if err != nil {
						return fmt.Errorf("failed to load fixture: %w", err)
					}

					sites := prog.Sites
					if name := c.String("site"); name != "" {
						site, ok := prog.Site(name)
						if !ok {
							return fmt.Errorf("no call site named %q", name)
						}

						sites = []*fixture.Site{site}
					}

					prioritizer, err := calls.New(logger, calls.DefaultConfig())
					if err != nil {
						return fmt.Errorf("failed to initialize prioritizer: %w", err)
					}

					for _, site := range sites {
						tasks, err := prioritizer.ComputeTasks(site.Call, site.Members)
						if err != nil {
							return fmt.Errorf("site %s: %w", site.Name, err)
						}

						printHeader(os.Stdout, color, "%s: %s", site.Name, site.Expr)
						fmt.Fprint(os.Stdout, calls.Format(tasks))
					}

					return nil
				},
			},
			{
				Name:      "sites",
				Usage:     "List the call sites of a fixture",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide exactly one fixture file as argument")
					}

					prog, err := fixture.Load(newLogger(false), c.Args().First())
					if err != nil {
						return fmt.Errorf("failed to load fixture: %w", err)
					}

					for _, site := range prog.Sites {
						fmt.Fprintf(os.Stdout, "%s\t%s\n", site.Name, site.Expr)
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func useColor(mode string, out *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()), nil
	default:
		return false, fmt.Errorf("invalid color mode %q", mode)
	}
}

func printHeader(w io.Writer, color bool, format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	if color {
		line = "\x1b[1m" + line + "\x1b[0m"
	}

	fmt.Fprintln(w, line)
}
