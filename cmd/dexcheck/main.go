// dexcheck validates a GingerDex snapshot file and reports drift between the
// precomputed leaderboard numbers and what the engine resolves.
//
// Usage: go run ./cmd/dexcheck -data=<path> [-simulate=N] [-seed=S] [-strict]
//
// The tool:
// 1. Decodes and validates the snapshot (JSON, or YAML by extension)
// 2. Checks every pull rate is drawable
// 3. Compares each region's declared card count with the catalog
// 4. Lists trainer card entries that match no card, and stale unique counts
// 5. Optionally draws N cards and compares rarity shares with the pull rates
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/codyseavey/gingerdex/internal/dex"
	"github.com/codyseavey/gingerdex/internal/models"
	"github.com/codyseavey/gingerdex/internal/services"
)

func main() {
	dataPath := flag.String("data", "", "Path to snapshot file (required)")
	simulate := flag.Int("simulate", 0, "Draw this many cards and report rarity shares")
	seed := flag.Int64("seed", 0, "Seed for -simulate (default: clock)")
	strict := flag.Bool("strict", false, "Exit non-zero on warnings as well as errors")
	flag.Parse()

	if *dataPath == "" {
		fmt.Println("Usage: dexcheck -data=<path> [options]")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("  -data       Path to snapshot file (required)")
		fmt.Println("  -simulate   Draw N cards and compare rarity shares with pull rates")
		fmt.Println("  -seed       Seed for -simulate")
		fmt.Println("  -strict     Exit non-zero on warnings")
		os.Exit(1)
	}

	snap, err := services.LoadSnapshot(*dataPath)
	if err != nil {
		var snapErr *services.SnapshotError
		if errors.As(err, &snapErr) {
			fmt.Printf("❌ %s is invalid:\n%v\n", snapErr.Source, snapErr.Err)
		} else {
			fmt.Printf("❌ %v\n", err)
		}
		os.Exit(1)
	}

	catalog, err := dex.NewCatalog(snap)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ %d cards in %d regions, %d trainers\n",
		catalog.TotalCards(), len(catalog.RegionOrder()), len(catalog.Trainers()))

	warnings := 0
	warn := func(format string, args ...any) {
		warnings++
		fmt.Printf("  ⚠ "+format+"\n", args...)
	}

	src := rand.NewSource(time.Now().UnixNano())
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}
	drawer, err := dex.NewDrawer(catalog, src)
	if err != nil {
		fmt.Println("Pull rates:")
		warn("%v", err)
	}

	fmt.Println("Regions:")
	checkRegions(catalog, snap, warn)

	fmt.Println("Trainers:")
	for _, t := range catalog.Trainers() {
		checkTrainer(catalog, &t, warn)
	}

	if *simulate > 0 && drawer != nil {
		fmt.Printf("Simulating %d draws:\n", *simulate)
		if err := simulateDraws(catalog, drawer, *simulate); err != nil {
			log.Fatalf("Simulation failed: %v", err)
		}
	}

	fmt.Printf("\n%d warning(s)\n", warnings)
	if *strict && warnings > 0 {
		os.Exit(2)
	}
}

func checkRegions(c *dex.Catalog, snap *models.Snapshot, warn func(string, ...any)) {
	for _, region := range c.RegionOrder() {
		actual := len(c.RegionCards(region))
		info, ok := snap.RegionInfo[region]
		if ok && info.CardCount != 0 && info.CardCount != actual {
			warn("%s declares %d cards but has %d", region, info.CardCount, actual)
			continue
		}
		fmt.Printf("  ✓ %s: %d cards\n", region, actual)
	}
}

func checkTrainer(c *dex.Catalog, t *models.Trainer, warn func(string, ...any)) {
	for _, name := range c.Unresolved(t) {
		warn("%s: %q matches no card", t.Username, name)
	}

	owned := c.OwnedCount(t)
	if owned != t.UniqueCount {
		warn("%s: uniqueCount is %d but %d cards resolve", t.Username, t.UniqueCount, owned)
	}
	if t.TotalCards > 0 {
		pct := int(math.Round(100 * float64(t.UniqueCount) / float64(t.TotalCards)))
		if pct != t.CompletionPct {
			warn("%s: completionPct is %d, want %d", t.Username, t.CompletionPct, pct)
		}
	}
}

func simulateDraws(c *dex.Catalog, d *dex.Drawer, n int) error {
	cards, err := d.Draw(n)
	if err != nil {
		return err
	}

	observed := make(map[string]int)
	for i := range cards {
		observed[cards[i].Rarity]++
	}
	expected := make(map[string]float64)
	for _, card := range c.Cards() {
		expected[card.Rarity] += card.PullRate / c.TotalPullRate()
	}

	rarities := make([]string, 0, len(expected))
	for r := range expected {
		rarities = append(rarities, r)
	}
	sort.Strings(rarities)

	for _, r := range rarities {
		share := float64(observed[r]) / float64(n)
		label := r
		if label == "" {
			label = "(none)"
		}
		fmt.Printf("  %-12s observed %6.2f%%  expected %6.2f%%\n", label, 100*share, 100*expected[r])
	}
	return nil
}
