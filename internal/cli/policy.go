package cli

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Work with policy files",
}

// policyValidateCmd represents the policy validate command
var policyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the policy file and show the resulting policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := loadPolicy()
		if err != nil {
			log.Error().Err(err).Msg("Policy is invalid.")
			return err
		}

		now := "system clock"
		if policy.HasFixedNow() {
			now = policy.FixedNow().Format(time.RFC3339)
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Setting", "Value"})
		t.AppendRows([]table.Row{
			{"type header", describeRule(policy.HasExpectedTypeHeader(), policy.ExpectedTypeHeader(), policy.IgnoreTypeHeader())},
			{"issuer", describeRule(policy.HasExpectedIssuer(), policy.ExpectedIssuer(), policy.IgnoreIssuer())},
			{"audience", describeRule(policy.HasExpectedAudience(), policy.ExpectedAudience(), policy.IgnoreAudiences())},
			{"allow missing expiration", policy.AllowMissingExpiration()},
			{"expect issued in the past", policy.ExpectIssuedInThePast()},
			{"clock skew", policy.ClockSkew().String()},
			{"now", now},
		})
		applyTableFormat(t)
		t.Render()

		log.Info().Msg("Policy is valid.")
		return nil
	},
}

func init() {
	policyCmd.AddCommand(policyValidateCmd)
	rootCmd.AddCommand(policyCmd)
}
