package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/output"
)

var (
	calcScenario      string
	calcStarring      string
	calcRefineTroop   string
	calcRefinePercent int
	calcIncludeBase   bool
	calcXLSXPath      string
)

var calcCmd = &cobra.Command{
	Use:   "calc <builds.yaml>",
	Short: "Evaluate builds from a file",
	Long: `Evaluate every build of a YAML file and print buffs, debuffs and materials.

The file lists builds by item name:

  builds:
    - name: bow
      animal: {name: Fafnir, type: dragon}
      slots:
        - {slot: weapon, item: Ares Bow, stars: 3}`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, overrides the config")
	calcCmd.Flags().StringVar(&calcScenario, "scenario", "any", "Scenario (any, attacking, defending, reinforcing, occupying)")
	calcCmd.Flags().StringVar(&calcStarring, "starring", "equipped", "Starring mode (min, equipped, max)")
	calcCmd.Flags().StringVar(&calcRefineTroop, "refine-troop", "", "Troop type of the refine estimate")
	calcCmd.Flags().IntVar(&calcRefinePercent, "refine-percent", 100, "Refine slider value")
	calcCmd.Flags().BoolVar(&calcIncludeBase, "include-base", false, "Add the cost of base items to the materials")
	calcCmd.Flags().StringVar(&calcXLSXPath, "xlsx", "", "Also write the comparison of all builds to this workbook")
}

type buildFile struct {
	Builds []buildEntry `yaml:"builds"`
}

type buildEntry struct {
	Name   string               `yaml:"name"`
	Animal *equipment.Animal    `yaml:"animal"`
	Slots  []entities.BuildSlot `yaml:"slots"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	scenario, ok := entities.ScenarioFromString(calcScenario)
	if !ok {
		return fmt.Errorf("unknown scenario: %s", calcScenario)
	}
	starring, ok := entities.StarringModeFromString(calcStarring)
	if !ok {
		return fmt.Errorf("unknown starring mode: %s", calcStarring)
	}
	var refine *engine.RefineOptions
	if calcRefineTroop != "" {
		troop, ok := equipment.TroopFromString(calcRefineTroop)
		if !ok {
			return fmt.Errorf("unknown refine troop: %s", calcRefineTroop)
		}
		refine = &engine.RefineOptions{Troop: troop, Percent: calcRefinePercent}
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read builds: %w", err)
	}
	var file buildFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse builds: %w", err)
	}
	if len(file.Builds) == 0 {
		return fmt.Errorf("%s lists no builds", args[0])
	}

	eng, err := engine.New(&engine.Config{ExcludedTroops: cfg.Engine.Troops()})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	generals := make([]*entities.General, 0, len(file.Builds))
	for i, entry := range file.Builds {
		g, err := cat.ResolveBuild(&entities.Build{Name: entry.Name, Slots: entry.Slots, Animal: entry.Animal})
		if err != nil {
			return fmt.Errorf("build %d: %w", i+1, err)
		}

		out, err := eng.Evaluate(context.Background(), &engine.EvaluateInput{
			General:     g,
			Scenario:    scenario,
			Starring:    starring,
			IncludeBase: calcIncludeBase,
			Refine:      refine,
		})
		if err != nil {
			return fmt.Errorf("build %d: %w", i+1, err)
		}

		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("build %d", i+1)
		}
		printEvaluation(name, out)
		generals = append(generals, g)
	}

	if calcXLSXPath != "" {
		table := comparison.BuildTable(generals, comparison.TableOptions{
			Scenario:       scenario,
			Refine:         refine,
			ExcludedTroops: cfg.Engine.Troops(),
			IncludeBase:    calcIncludeBase,
		})
		if err := output.SaveComparisonXLSX(calcXLSXPath, table); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		fmt.Printf("Comparison written to %s\n", calcXLSXPath)
	}
	return nil
}

func printEvaluation(name string, out *engine.EvaluateOutput) {
	fmt.Printf("%s\n  %s\n", name, out.Key)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\tbuff\tdebuff\t")
	for _, key := range entities.AllBuffKeys() {
		buff, debuff := out.Total.Get(key), out.Debuffs.Buffs.Get(key)
		if buff == 0 && debuff == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\t%g\t%g\t\n", key, buff, debuff)
	}
	_ = w.Flush()

	fmt.Printf("  totals: attack %g, defense %g, hp %g\n", out.Totals.Attack, out.Totals.Defense, out.Totals.Hp)

	for _, level := range []struct {
		label  string
		counts [equipment.MaterialCount]int
	}{
		{"lv6", out.Materials.Lv6},
		{"lv7", out.Materials.Lv7},
	} {
		for _, m := range equipment.AllMaterials() {
			if n := level.counts[m]; n > 0 {
				fmt.Printf("  %s %s: %d\n", level.label, m, n)
			}
		}
	}
	fmt.Println()
}
