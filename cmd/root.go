/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"strings"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd runs the full register -> verify -> authenticate workflow.
var rootCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Register, verify, and sign in to a Cognito user pool app client",
	Long: `Enroll walks through the lifecycle of a new account in a Cognito user pool:

  1. Sign up with an email, username, and password.
  2. Confirm the account with the code sent to the email.
  3. Authenticate with the username and password and print the access token.

The app client must allow the USER_PASSWORD_AUTH flow. Every flag can also be
set through an ENROLL_ prefixed environment variable (e.g. ENROLL_CLIENT_ID)
or a config file.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnroller(cmd, func(ctx context.Context, e *enroll.Enroller) error {
			_, err := e.Run(ctx)
			return err
		})
	},
}

// Execute runs the root command.
func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (yaml, json, toml)",
	)

	rootCmd.PersistentFlags().StringP(
		"region",
		"r",
		"",
		`
			AWS region of the user pool. Falls back to the AWS default provider
			chain, and then to us-east-1.
		`,
	)

	rootCmd.PersistentFlags().StringP(
		"client-id",
		"c",
		"",
		`
			Client ID of the user pool app client. Required.
		`,
	)

	rootCmd.PersistentFlags().String(
		"client-secret",
		"",
		`
			Secret of the app client, if it has one.
		`,
	)

	rootCmd.PersistentFlags().String(
		"endpoint",
		"",
		`
			Override the Cognito endpoint, e.g. for a local emulator.
		`,
	)

	rootCmd.PersistentFlags().Bool(
		"continue-on-verify-error",
		false,
		`
			Report a failed verification and authenticate anyway instead of
			aborting.
		`,
	)

	rootCmd.PersistentFlags().Bool(
		"show-token",
		false,
		"Print the full access token after authenticating.",
	)

	rootCmd.PersistentFlags().Bool(
		"debug",
		false,
		"Enable debug logging.",
	)

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
}

const envPrefix = "enroll"

func initConfig() error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	return errors.Wrapf(viper.ReadInConfig(), "failed to read config file %s", cfgFile)
}
