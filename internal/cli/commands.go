package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/confhaus/confval/internal/version"
	"github.com/confhaus/confval/pkg/config"
	"github.com/confhaus/confval/pkg/logging"
	"github.com/confhaus/confval/pkg/validation"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "confval",
		Short: "Validate configuration values against their descriptions",
		Long: `confval checks candidate configuration values against a configuration
description: the declared parameter kinds, required flags, numeric and
text bounds, patterns and allowed options.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDescribeCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("confval version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newValidateCmd() *cobra.Command {
	var descriptionPath string

	cmd := &cobra.Command{
		Use:   "validate <values-file>",
		Short: "Validate a values file against a configuration description",
		Long: `Validate loads a configuration description (TOML or XML) and a flat
values file (TOML or YAML), checks every declared parameter and reports
all violations.

The command exits with status 1 when violations are found.`,
		Example: `  # Validate TOML values against a TOML description
  confval validate --description bridge.toml values.toml

  # Descriptions may also come from XML catalogs
  confval validate --description bridge.xml values.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := config.LoadDescription(descriptionPath)
			if err != nil {
				return err
			}

			values, err := config.LoadValues(args[0])
			if err != nil {
				return err
			}

			log.Info().
				Str("uri", desc.URI).
				Int("parameterCount", len(desc.Parameters)).
				Msg("Validating values")

			result, err := validation.New().Validate(desc, values)
			if err != nil {
				return err
			}

			fmt.Print(renderResult(result, os.Stdout))
			if !result.Valid() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&descriptionPath, "description", "d", "", "Path to the configuration description (TOML or XML)")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <description-file>",
		Short: "Print the parsed configuration description",
		Long: `Describe loads a configuration description and prints its normalized
form as TOML. Useful to inspect what an XML catalog entry declares.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := config.LoadDescription(args[0])
			if err != nil {
				return err
			}

			out, err := toml.Marshal(describedForm(desc))
			if err != nil {
				return fmt.Errorf("failed to render description: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}
}
