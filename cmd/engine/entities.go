package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [entity_id]",
	Short: "Print the presentation of one entity, or of all entities",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 1 {
			p, err := a.engine.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(p)
		}
		list, err := a.engine.DescribeAll(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <entity_id>",
	Short: "Toggle an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return a.engine.Toggle(cmd.Context(), args[0])
	},
}

var selectAttribute string

var selectCmd = &cobra.Command{
	Use:   "select <entity_id> <option>",
	Short: "Select an option of a mode attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return a.engine.SelectOption(cmd.Context(), args[0], selectAttribute, args[1])
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options <entity_id>",
	Short: "List the selectable options of an entity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		opts, err := a.engine.Options(cmd.Context(), args[0], selectAttribute)
		if err != nil {
			return err
		}
		return printJSON(opts)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <entity_id> <value>",
	Short: "Send a numeric value to an entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return a.engine.SetValue(cmd.Context(), args[0], value)
	},
}

func init() {
	selectCmd.Flags().StringVar(&selectAttribute, "attribute", "", "Attribute to change (default: the domain's primary attribute)")
	optionsCmd.Flags().StringVar(&selectAttribute, "attribute", "", "Attribute to list (default: the domain's primary attribute)")
	rootCmd.AddCommand(describeCmd, toggleCmd, selectCmd, optionsCmd, setCmd)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
