/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/identity/cognito"
	"github.com/arya-analytics/enroll/pkg/prompt"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// withEnroller validates the configuration, opens the identity provider, and
// hands an Enroller to f. Nothing is prompted for or sent anywhere until the
// configuration is known to be valid.
func withEnroller(
	cmd *cobra.Command,
	f func(ctx context.Context, e *enroll.Enroller) error,
) error {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return errors.Wrap(enroll.MissingClientID, "set --client-id or ENROLL_CLIENT_ID")
	}

	logger, err := configureLogging()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	provider, err := cognito.Open(ctx, newIdentityConfig(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "AWS Region set to: %s\n", provider.Region)
	_, _ = fmt.Fprintf(out, "Client id is set to: %s\n", clientID)
	_, _ = fmt.Fprintln(out, "Client ready!")

	e, err := enroll.New(newEnrollConfig(cmd, clientID, provider, logger))
	if err != nil {
		return err
	}
	return f(ctx, e)
}

func newIdentityConfig(logger *zap.Logger) cognito.Config {
	return cognito.Config{
		Region:       viper.GetString("region"),
		ClientSecret: viper.GetString("client-secret"),
		Endpoint:     viper.GetString("endpoint"),
		Logger:       logger.Named("cognito"),
	}
}

func newEnrollConfig(
	cmd *cobra.Command,
	clientID string,
	svc identity.Service,
	logger *zap.Logger,
) enroll.Config {
	return enroll.Config{
		ClientID:                      clientID,
		Identity:                      svc,
		Prompter:                      prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()),
		Out:                           cmd.OutOrStdout(),
		Logger:                        logger.Named("enroll"),
		ContinueOnVerificationFailure: viper.GetBool("continue-on-verify-error"),
		ShowToken:                     viper.GetBool("show-token"),
	}
}

// configureLogging builds the logger for a single run. Logs go to stderr so they
// don't interleave with prompts; only warnings and above are shown unless
// --debug is set.
func configureLogging() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if viper.GetBool("debug") {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("run", uuid.NewString())), nil
}
