package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auth0/go-jwt-claims/internal/logging"
)

const (
	LogLevelKey   = "log.level"
	LogFormatKey  = "log.format"
	LogNoColorKey = "log.no_color"

	PolicyKey = "policy"
)

var rootCmd = &cobra.Command{
	Use:   "jwtclaims",
	Short: "Check the registered claims of JWTs against a validation policy",
	Long: `jwtclaims checks the exp, nbf, iat, iss, aud claims and the typ header
of a JWT against a policy described in a YAML file.

It never verifies signatures: tokens are decoded as they are.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		noColor := viper.GetBool(LogNoColorKey)
		if noColor {
			color.NoColor = true
		}
		logging.Init(logging.Options{
			Level:   viper.GetString(LogLevelKey),
			Format:  viper.GetString(LogFormatKey),
			NoColor: noColor,
		})
		return nil
	},
}

// Execute runs the CLI. Rejected tokens exit with status 2, other errors with 1.
func Execute() {
	err := rootCmd.Execute()
	if errors.Is(err, errRejected) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("execution failed")
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	_ = viper.BindPFlag(LogFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(LogNoColorKey, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentFlags().String("policy", "", "Policy file (YAML)")
	_ = viper.BindPFlag(PolicyKey, rootCmd.PersistentFlags().Lookup("policy"))

	viper.SetEnvPrefix("JWTCLAIMS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))

	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
