package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	jwtclaims "github.com/auth0/go-jwt-claims"
	jwtgoclaims "github.com/auth0/go-jwt-claims/adapters/jwtgo"
	"github.com/auth0/go-jwt-claims/core"
	"github.com/auth0/go-jwt-claims/validator"
)

// errRejected is returned when the claims fail the policy. The failure has
// already been printed.
var errRejected = errors.New("token rejected")

var (
	checkToken      string
	checkClaimsFile string
	checkTypeHeader string
	checkNow        string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a token or a claims file against the policy",
	Example: `  jwtclaims check --policy policy.yaml --token eyJhbGciOi...
  jwtclaims check --policy policy.yaml --claims claims.json --type-header at+jwt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra []validator.Option
		if checkNow != "" {
			extra = append(extra, validator.WithFixedNowRFC3339(checkNow))
		}

		policy, err := loadPolicy(extra...)
		if err != nil {
			return err
		}

		claims, err := readClaims()
		if err != nil {
			return err
		}

		checker, err := core.New(
			core.WithPolicy(policy),
			core.WithLogger(jwtclaims.NewZerologLogger(log.Logger)),
		)
		if err != nil {
			return err
		}

		log.Debug().Time("now", policy.Now()).Msg("Checking claims...")
		if err := checker.CheckClaims(cmd.Context(), claims); err != nil {
			var validationErr *validator.ValidationError
			if !errors.As(err, &validationErr) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", redCross(), validationErr.Code, validationErr.Message)
			return errRejected
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s token claims are valid\n", greenCheck())
		return nil
	},
}

func readClaims() (*validator.TokenClaims, error) {
	if checkToken != "" {
		if checkTypeHeader != "" {
			return nil, errors.New("--type-header only applies to --claims, a token carries its own header")
		}
		return jwtgoclaims.ParseUnverified(checkToken)
	}

	data, err := os.ReadFile(checkClaimsFile)
	if err != nil {
		return nil, fmt.Errorf("reading claims file: %w", err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(data, &claims); err != nil {
		return nil, fmt.Errorf("parsing claims file: %w", err)
	}

	var header map[string]any
	if checkTypeHeader != "" {
		header = map[string]any{"typ": checkTypeHeader}
	}
	return jwtgoclaims.FromMapClaims(claims, header)
}

func init() {
	checkCmd.Flags().StringVar(&checkToken, "token", "", "Compact JWT to check, decoded without verification")
	checkCmd.Flags().StringVar(&checkClaimsFile, "claims", "", "JSON file holding the token payload")
	checkCmd.Flags().StringVar(&checkTypeHeader, "type-header", "", "typ header to assume for --claims")
	checkCmd.Flags().StringVar(&checkNow, "now", "", "Validate at this RFC 3339 time instead of the clock")
	checkCmd.MarkFlagsMutuallyExclusive("token", "claims")
	checkCmd.MarkFlagsOneRequired("token", "claims")

	rootCmd.AddCommand(checkCmd)
}
