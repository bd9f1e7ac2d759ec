package client

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
)

var (
	scenario       string
	starring       string
	refineTroop    string
	refinePercent  int32
	includeBase    bool
	excludedTroops []string
	explain        bool
	recommendFor   []string
	limit          int32
	slotFilter     string
)

var statsCmd = &cobra.Command{
	Use:   "stats <session-id>",
	Short: "Evaluate the build of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend <session-id> <slot>",
	Short: "Rank the items of a slot against the current build",
	Args:  cobra.ExactArgs(2),
	RunE:  runRecommend,
}

var listEquipmentCmd = &cobra.Command{
	Use:   "list-equipment",
	Short: "List catalog equipment",
	RunE:  runListEquipment,
}

func init() {
	statsCmd.Flags().StringVar(&scenario, "scenario", "any", "Scenario (any, attacking, defending, reinforcing, occupying)")
	statsCmd.Flags().StringVar(&starring, "starring", "equipped", "Starring mode (min, equipped, max)")
	statsCmd.Flags().StringVar(&refineTroop, "refine-troop", "", "Troop type of the refine estimate")
	statsCmd.Flags().Int32Var(&refinePercent, "refine-percent", 100, "Refine slider value")
	statsCmd.Flags().BoolVar(&includeBase, "include-base", false, "Add the cost of base items to the materials")
	statsCmd.Flags().StringSliceVar(&excludedTroops, "exclude", nil, "Troop types left out of the totals")
	statsCmd.Flags().BoolVar(&explain, "explain", false, "List the sources of every buff")

	recommendCmd.Flags().StringVar(&scenario, "scenario", "any", "Scenario")
	recommendCmd.Flags().StringVar(&starring, "starring", "equipped", "Starring mode")
	recommendCmd.Flags().StringSliceVar(&recommendFor, "troops", nil, "Troop types to score, all when empty")
	recommendCmd.Flags().Int32Var(&limit, "limit", 10, "Number of items to show")

	listEquipmentCmd.Flags().StringVar(&slotFilter, "slot", "", "Only list items of this slot")
}

func runStats(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &configuratorv1alpha1.GetStatsRequest{
		SessionId:      args[0],
		Scenario:       scenario,
		Starring:       starring,
		IncludeBase:    includeBase,
		ExcludedTroops: excludedTroops,
	}
	if refineTroop != "" {
		req.Refine = &configuratorv1alpha1.Refine{Troop: refineTroop, Percent: refinePercent}
	}

	resp, err := client.GetStats(ctx, req)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	stats := resp.Stats
	fmt.Fprintf(w, "Key: %s\n", stats.Key)
	printVector(w, "Buffs", stats.Total)
	printVector(w, "Debuffs", stats.Debuffs)
	if t := stats.Totals; t != nil {
		fmt.Fprintf(w, "Totals: attack %g, defense %g, hp %g\n", t.Attack, t.Defense, t.Hp)
	}
	printMaterials(w, "Materials lv6", stats.MaterialsLv6)
	printMaterials(w, "Materials lv7", stats.MaterialsLv7)

	if explain {
		fmt.Fprintln(w, "Sources:")
		for _, c := range stats.BuffDiagnostics {
			for _, src := range c.Sources {
				fmt.Fprintf(w, "  %s: %s %s %+g\n", c.Field, src.Kind, src.Name, src.Value)
			}
		}
	}
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RecommendPiece(ctx, &configuratorv1alpha1.RecommendPieceRequest{
		SessionId: args[0],
		Slot:      args[1],
		Scenario:  scenario,
		Starring:  starring,
		Troops:    recommendFor,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Current score: %g\n", resp.BaseScore)
	for i, r := range resp.Recommendations {
		fmt.Fprintf(w, "%2d. %s [%s] score %g (%+g)\n", i+1, r.Item, r.Set, r.Score, r.Gain)
	}
	return nil
}

func runListEquipment(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListEquipment(ctx, &configuratorv1alpha1.ListEquipmentRequest{Slot: slotFilter})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Found %d items\n", len(resp.Equipments))
	for _, e := range resp.Equipments {
		verified := ""
		if !e.Verified {
			verified = " (unverified)"
		}
		fmt.Fprintf(w, "  %-8s %s [%s, lv%d]%s\n", e.Slot, e.Name, e.Set, e.Level, verified)
	}
	return nil
}

func printVector(w io.Writer, title string, v map[string]float64) {
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range sortedKeys(v) {
		if v[k] != 0 {
			fmt.Fprintf(w, "  %s: %g\n", k, v[k])
		}
	}
}

func printMaterials(w io.Writer, title string, m map[string]int32) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(w, "  %s: %d\n", k, m[k])
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
