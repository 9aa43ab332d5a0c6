package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/amecca/rootcmp/internal/adapters/driven/config/file"
	"github.com/amecca/rootcmp/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted defaults",
	Long: `Reads and writes the defaults stored in the rootcmp config file
(verbosity, color, name-width). Command-line flags always override
the stored values.`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		for _, key := range store.Keys() {
			val, _ := store.Get(key)
			cmd.Printf("%s = %v\n", key, val)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		val, ok := store.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown key %q", args[0])
		}
		cmd.Printf("%v\n", val)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openConfigStore()
		if err != nil {
			return err
		}
		key, raw := args[0], args[1]

		// Integers are stored as integers, everything else as strings.
		var val any = raw
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			val = n
		}

		if err := store.Set(key, val); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		cmd.Printf("%s = %v\n", key, val)
		return nil
	},
}

func openConfigStore() (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config store: %w", err)
	}
	return store, nil
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
