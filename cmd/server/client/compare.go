package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
)

var compareAddCmd = &cobra.Command{
	Use:   "compare-add <session-id>",
	Short: "Add the current build to the comparison",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompareAdd,
}

var compareRemoveCmd = &cobra.Command{
	Use:   "compare-remove <session-id> <index>",
	Short: "Drop a build from the comparison",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompareRemove,
}

var compareRestoreCmd = &cobra.Command{
	Use:   "compare-restore <session-id> <index>",
	Short: "Copy a compared build back into the session",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompareRestore,
}

var compareShowCmd = &cobra.Command{
	Use:   "compare-show <session-id>",
	Short: "Show the comparison table at max stars",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompareShow,
}

func init() {
	compareShowCmd.Flags().StringVar(&scenario, "scenario", "any", "Scenario")
	compareShowCmd.Flags().StringVar(&refineTroop, "refine-troop", "", "Troop type of the refine estimate")
	compareShowCmd.Flags().Int32Var(&refinePercent, "refine-percent", 100, "Refine slider value")
	compareShowCmd.Flags().StringSliceVar(&excludedTroops, "exclude", nil, "Troop types left out of the totals")
}

func parseIndex(s string) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return int32(i), nil
}

func runCompareAdd(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.AddToComparison(ctx, &configuratorv1alpha1.AddToComparisonRequest{SessionId: args[0]})
	if err != nil {
		return err
	}

	if resp.Added {
		fmt.Fprintf(cmd.OutOrStdout(), "Added, comparing %d builds\n", resp.Count)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Already compared, comparing %d builds\n", resp.Count)
	}
	return nil
}

func runCompareRemove(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RemoveFromComparison(ctx, &configuratorv1alpha1.RemoveFromComparisonRequest{
		SessionId: args[0],
		Index:     index,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Comparing %d builds\n", resp.Count)
	return nil
}

func runCompareRestore(cmd *cobra.Command, args []string) error {
	index, err := parseIndex(args[1])
	if err != nil {
		return err
	}

	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RestoreFromComparison(ctx, &configuratorv1alpha1.RestoreFromComparisonRequest{
		SessionId: args[0],
		Index:     index,
	})
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), resp.Session)
	return nil
}

func runCompareShow(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createConfiguratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &configuratorv1alpha1.GetComparisonRequest{
		SessionId:      args[0],
		Scenario:       scenario,
		ExcludedTroops: excludedTroops,
	}
	if refineTroop != "" {
		req.Refine = &configuratorv1alpha1.Refine{Troop: refineTroop, Percent: refinePercent}
	}

	resp, err := client.GetComparison(ctx, req)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Comparing %d/%d builds (%s)\n", len(resp.Columns), resp.Capacity, resp.Scenario)
	for i, col := range resp.Columns {
		fmt.Fprintf(w, "[%d] %s\n", i, strings.Join(col.Items, " / "))
		if t := col.BuffTotals; t != nil {
			fmt.Fprintf(w, "  buffs: attack %g, defense %g, hp %g\n", t.Attack, t.Defense, t.Hp)
		}
		if t := col.DebuffTotals; t != nil {
			fmt.Fprintf(w, "  debuffs: attack %g, defense %g, hp %g\n", t.Attack, t.Defense, t.Hp)
		}
	}
	return nil
}
