package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hexkit/internal/config"
	"github.com/joshuapare/hexkit/internal/writer"
)

func init() {
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `The config command prints the settings in effect after the config
file and HEXKIT_* environment variables are applied, as TOML that can be
saved as a config file. With --write the settings are saved to the
config file atomically.

Example:
  hexctl config
  hexctl config --write
  hexctl config --env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _ := cmd.Flags().GetBool("env")
			write, _ := cmd.Flags().GetBool("write")
			return runConfig(env, write)
		},
	}
	cmd.Flags().Bool("env", false, "List the recognised environment variables instead")
	cmd.Flags().Bool("write", false, "Save the effective settings to the config file")
	return cmd
}

func runConfig(listEnv, write bool) error {
	if listEnv {
		names := config.EnvVars()
		sort.Strings(names)
		for _, name := range names {
			v, ok := os.LookupEnv(name)
			if ok {
				printInfo("%s=%s\n", name, v)
			} else {
				printInfo("%s\n", name)
			}
		}
		return nil
	}

	if write {
		if err := config.Save(&writer.FileWriter{Path: configPath, Perm: 0o644}, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		printInfo("✓ Config written to %s\n", configPath)
		return nil
	}

	if jsonOut {
		return printJSON(cfg)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	printVerbose("# source: %s\n", configPath)
	printInfo("%s", data)
	return nil
}
