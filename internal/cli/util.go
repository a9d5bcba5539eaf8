package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/viper"

	"github.com/auth0/go-jwt-claims/config"
	"github.com/auth0/go-jwt-claims/validator"
)

func greenCheck() string { return color.GreenString("✔") }
func redCross() string   { return color.RedString("✘") }

// loadPolicy builds the policy named by --policy or JWTCLAIMS_POLICY.
func loadPolicy(extra ...validator.Option) (*validator.Policy, error) {
	path := viper.GetString(PolicyKey)
	if path == "" {
		return nil, errors.New("policy file not configured, provide via --policy or env")
	}

	file, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return file.Build(extra...)
}

func describeRule(expected bool, value string, ignored bool) string {
	switch {
	case expected:
		return fmt.Sprintf("expected %q", value)
	case ignored:
		return "ignored"
	default:
		return "must be absent"
	}
}

func applyTableFormat(t table.Writer) {
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
}
