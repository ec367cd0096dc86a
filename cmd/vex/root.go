package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vexlang/vex/transform"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "vex",
	Short: "Compile JSX into virtual-DOM constructor calls",
	Long: `vex rewrites .jsx files into plain .js files: every JSX element
becomes a call to the newHtml/newComponent helpers (or a configured
per-tag factory), and the imports those calls need are injected.

Quick start:
  vex build ./...        Compile every .jsx file under the current tree
  vex watch ./src        Recompile on change
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .vex.yml)")
	rootCmd.PersistentFlags().String("import", "", "module path the newHtml/newComponent helpers are imported from")
	rootCmd.PersistentFlags().String("factory-import", "", "module path per-tag factory helpers are imported from")
	viper.BindPFlag("import", rootCmd.PersistentFlags().Lookup("import"))
	viper.BindPFlag("factoryImport", rootCmd.PersistentFlags().Lookup("factory-import"))
}

// initConfig loads .vex.yml (or --config) and VEX_* environment
// variables. Flags take precedence over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("VEX")
	viper.AutomaticEnv()

	// Missing config file is fine; everything has defaults.
	_ = viper.ReadInConfig()
}

// loadOptions builds transform options from the resolved configuration.
func loadOptions() *transform.Options {
	opts := &transform.Options{
		Pragma:        viper.GetStringMapString("pragma"),
		Import:        viper.GetString("import"),
		FactoryImport: viper.GetString("factoryImport"),
		Factory:       viper.GetStringMapString("factory"),
	}
	if tags := viper.GetStringSlice("templates"); len(tags) > 0 {
		opts.Templates = make(map[string]bool, len(tags))
		for _, t := range tags {
			opts.Templates[t] = true
		}
	}
	return opts
}
