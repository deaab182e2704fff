package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nmatjar/HashEmpire/internal/config"
	"github.com/nmatjar/HashEmpire/internal/game"
)

var (
	trials      int
	seed        int64
	tier        int
	variantPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eventsim",
		Short: "Random event pool distribution simulator",
		Long: `Runs repeated weighted draws against the tier event pools and prints
per-event hit counts, so pool weights can be tuned against observed odds.`,
		RunE: runSim,
	}
	rootCmd.Flags().IntVarP(&trials, "trials", "n", 100000, "draws per tier")
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 1, "rng seed")
	rootCmd.Flags().IntVarP(&tier, "tier", "t", 0, "simulate one tier only (0 = all)")
	rootCmd.Flags().StringVarP(&variantPath, "variant", "v", "", "variant yaml (default: built-in syndicate)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	v := config.Default()
	if variantPath != "" {
		loaded, err := config.Load(variantPath)
		if err != nil {
			return err
		}
		v = loaded
	}

	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Printf("\nEvent pool simulation: variant %q, %d draws/tier, seed %d\n", v.Key, trials, seed)

	rng := rand.New(rand.NewSource(seed))
	for ti, pool := range v.EventPools {
		if tier != 0 && tier != ti+1 {
			continue
		}
		printTier(rng, ti+1, pool)
	}
	return nil
}

func printTier(rng *rand.Rand, tier int, pool []config.Event) {
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[game.PickWeighted(rng, pool).ID]++
	}

	totalWeight := 0
	for _, ev := range pool {
		if ev.Weight > 0 {
			totalWeight += ev.Weight
		}
	}

	sorted := make([]config.Event, len(pool))
	copy(sorted, pool)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })

	color.New(color.FgGreen, color.Bold).Printf("\nTier %d (%d events, total weight %d)\n", tier, len(pool), totalWeight)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Event", "Title", "Weight", "Expected %", "Observed %", "Hits"}),
	)
	for _, ev := range sorted {
		expected := 0.0
		if totalWeight > 0 && ev.Weight > 0 {
			expected = 100 * float64(ev.Weight) / float64(totalWeight)
		}
		observed := 100 * float64(counts[ev.ID]) / float64(trials)
		table.Append([]string{
			ev.ID,
			ev.Title,
			fmt.Sprintf("%d", ev.Weight),
			fmt.Sprintf("%.2f", expected),
			fmt.Sprintf("%.2f", observed),
			fmt.Sprintf("%d", counts[ev.ID]),
		})
	}
	table.Render()
}
