package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/loadplan/internal/catalog"
	"github.com/piwi3910/loadplan/internal/driver"
	"github.com/piwi3910/loadplan/internal/multicontainer"
	"github.com/piwi3910/loadplan/internal/serialize"
)

func main() {
	root := &cobra.Command{
		Use:   "loadplan [scenario-file]",
		Short: "loadplan — 3D container loading engine",
		Long:  "Loads a scenario document (JSON or YAML) and prints a stowage plan.",
		Args:  cobra.ExactArgs(1),
		RunE:  runLoad,
	}

	root.AddCommand(catalogCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadScenario(path string) (serialize.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return serialize.Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return serialize.DecodeYAML(data)
	}
	return serialize.DecodeJSON(data)
}

func runLoad(cmd *cobra.Command, args []string) error {
	scenario, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	if scenario.ContainerCount > 1 {
		outcome := multicontainer.Run(scenario.Container, scenario.ContainerCount, scenario.Rules, scenario.Groups, scenario.Cargo)
		doc := serialize.BuildMultiDocument(outcome.Results, outcome.Remainder)
		out, err := serialize.ToJSON(doc)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	res := driver.Run(scenario.Container, scenario.Rules, scenario.Groups, scenario.Cargo)
	doc := serialize.BuildDocument(scenario.Container, res.Placed, res.Unplaced)
	out, err := serialize.ToJSON(doc)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in pallet, container and truck specs",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := map[string]any{
				"pallets":    catalog.Pallets,
				"containers": catalog.Containers,
				"trucks":     catalog.Trucks,
			}
			out, err := serialize.ToJSON(specs)
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
