package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/emicon/internal/infrastructure/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Println(app.ConfigMgr.ConfigFile())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		path := app.ConfigMgr.ConfigFile()
		if !configInitForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
		if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Println(app.Theme.SuccessStyle.Render("wrote " + path))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configInitCmd, configSchemaCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}
