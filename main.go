// Command gridkit manipulates newline-delimited character grids.
//
// Subcommands cover the grid operations (find, move, look, make), a
// quick character inventory (stats), and an interactive terminal play
// mode (play) driven by a scenario JSON file. Grid text is read from a
// file argument or stdin; results are printed to stdout so the output
// of one invocation can feed the next.
//
// The GRIDKIT_FILL environment variable (loadable from a .env file)
// overrides the default fill character written into vacated cells.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/casterix/gridkit/grid"
	"github.com/casterix/gridkit/scenario"
	"github.com/casterix/gridkit/seq"
	"github.com/casterix/gridkit/tui"
)

const (
	Version = "1.0.0"
	AppName = "gridkit"
)

func main() {
	// Load .env if present (ignore a missing file).
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	charFlag := &cli.StringFlag{
		Name:  "char",
		Usage: "target character",
		Value: "X",
	}

	return &cli.Command{
		Name:    AppName,
		Usage:   "manipulate newline-delimited character grids",
		Version: Version,
		Commands: []*cli.Command{
			{
				Name:      "find",
				Usage:     "print the (column,row) position of a character",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{charFlag},
				Action:    runFind,
			},
			{
				Name:      "move",
				Usage:     "move a character one step and print the new grid",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					charFlag,
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "direction: left, right, up or down",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "fill",
						Usage: "character written into the vacated cell",
					},
				},
				Action: runMove,
			},
			{
				Name:      "look",
				Usage:     "print the character found at the end of a UDLR path",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					charFlag,
					&cli.StringFlag{
						Name:     "path",
						Usage:    "path of U/D/L/R letters",
						Required: true,
					},
				},
				Action: runLook,
			},
			{
				Name:  "make",
				Usage: "print a fresh grid of one repeated character",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "rows", Usage: "number of rows", Required: true},
					&cli.IntFlag{Name: "cols", Usage: "number of columns", Required: true},
					&cli.StringFlag{Name: "char", Usage: "cell character", Value: "."},
				},
				Action: runMake,
			},
			{
				Name:      "stats",
				Usage:     "print grid dimensions and character inventory",
				ArgsUsage: "[file]",
				Action:    runStats,
			},
			{
				Name:  "play",
				Usage: "play a scenario interactively in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "scenario",
						Usage:    "path to a scenario JSON file",
						Required: true,
					},
				},
				Action: runPlay,
			},
		},
	}
}

func runFind(ctx context.Context, cmd *cli.Command) error {
	g, err := gridFromInput(cmd)
	if err != nil {
		return err
	}
	target, err := singleRuneFlag(cmd, "char")
	if err != nil {
		return err
	}

	pos, found := g.Find(target)
	if !found {
		return fmt.Errorf("character %q not found", string(target))
	}
	fmt.Printf("(%d,%d)\n", pos.X, pos.Y)
	return nil
}

func runMove(ctx context.Context, cmd *cli.Command) error {
	g, err := gridFromInput(cmd)
	if err != nil {
		return err
	}
	target, err := singleRuneFlag(cmd, "char")
	if err != nil {
		return err
	}
	dir, err := grid.ParseDirection(cmd.String("dir"))
	if err != nil {
		return err
	}

	out, err := g.Move(target, dir, resolveFill(cmd.String("fill")))
	if errors.Is(err, grid.ErrOutOfBounds) {
		// Expected branch for callers; print the sentinel and exit zero.
		fmt.Println("OOB")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runLook(ctx context.Context, cmd *cli.Command) error {
	g, err := gridFromInput(cmd)
	if err != nil {
		return err
	}
	target, err := singleRuneFlag(cmd, "char")
	if err != nil {
		return err
	}

	ch, err := g.Look(target, cmd.String("path"))
	if errors.Is(err, grid.ErrOutOfBounds) {
		fmt.Println("OOB")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(string(ch))
	return nil
}

func runMake(ctx context.Context, cmd *cli.Command) error {
	ch, err := singleRuneFlag(cmd, "char")
	if err != nil {
		return err
	}
	out, err := grid.Make(int(cmd.Int("rows")), int(cmd.Int("cols")), ch)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runStats(ctx context.Context, cmd *cli.Command) error {
	g, err := gridFromInput(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Dimensions: %dx%d\n", g.Width(), g.Height())

	cells := []rune(strings.ReplaceAll(g.String(), "\n", ""))
	distinct := seq.UniqueSlice(cells)
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	fmt.Printf("Distinct characters: %d\n", len(distinct))
	for _, ch := range distinct {
		matches, _ := seq.Partition(cells, func(c rune) bool { return c == ch })
		fmt.Printf("  %q: %d\n", string(ch), len(matches))
	}
	return nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	sc, err := scenario.Load(cmd.String("scenario"))
	if err != nil {
		return err
	}
	return tui.Run(sc)
}

// gridFromInput reads grid text from the first file argument, or stdin
// when no argument is given, and parses it. A single trailing newline
// from the shell is tolerated.
func gridFromInput(cmd *cli.Command) (*grid.Grid, error) {
	var (
		data []byte
		err  error
	)
	if path := cmd.Args().First(); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read grid text: %w", err)
	}
	return grid.New(strings.TrimSuffix(string(data), "\n"))
}

// resolveFill picks the fill character: the flag wins, then the
// GRIDKIT_FILL environment variable, then the package default.
func resolveFill(flag string) rune {
	if r := []rune(flag); len(r) > 0 {
		return r[0]
	}
	if r := []rune(os.Getenv("GRIDKIT_FILL")); len(r) > 0 {
		return r[0]
	}
	return grid.DefaultFill
}

func singleRuneFlag(cmd *cli.Command, name string) (rune, error) {
	runes := []rune(cmd.String(name))
	if len(runes) != 1 {
		return 0, fmt.Errorf("--%s must be exactly one character, got %q", name, cmd.String(name))
	}
	return runes[0], nil
}
