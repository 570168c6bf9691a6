// Command gridstat prints quick, human-readable facts about scenario
// files: grid dimensions, the actor's position, the distinct characters
// used and how often each occurs. It walks every .json file in the
// given directory (default "scenarios").
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/casterix/gridkit/scenario"
	"github.com/casterix/gridkit/seq"
)

func main() {
	dir := "scenarios"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing %s: %v\n", dir, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files found in %s\n", dir)
		os.Exit(1)
	}

	for _, path := range paths {
		fmt.Printf("\n=== %s ===\n", filepath.Base(path))
		describe(path)
	}
}

func describe(path string) {
	sc, err := scenario.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	g, err := sc.Grid()
	if err != nil {
		fmt.Printf("Error building grid: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("Description: %s\n", sc.Description)
	}
	fmt.Printf("Dimensions: %dx%d\n", g.Width(), g.Height())

	if pos, found := g.Find(sc.ActorRune()); found {
		fmt.Printf("Actor %q at (%d,%d)\n", sc.Actor, pos.X, pos.Y)
	}

	cells := []rune(strings.Join(sc.Layout, ""))
	fill, _ := seq.Partition(cells, func(c rune) bool { return c == sc.FillRune() })
	fmt.Printf("Fill cells: %d of %d\n", len(fill), len(cells))

	distinct := seq.UniqueSlice(cells)
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	counts := seq.Apply(func(ch rune) string {
		matches, _ := seq.Partition(cells, func(c rune) bool { return c == ch })
		return fmt.Sprintf("%s=%d", string(ch), len(matches))
	}, distinct)
	fmt.Printf("Characters: %s\n", strings.Join(counts, " "))
}
