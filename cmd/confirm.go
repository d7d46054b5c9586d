/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/spf13/cobra"
)

// confirmCmd runs the verification step on its own.
var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm a registered account with its verification code",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := cmd.Flags().GetString("username")
		if err != nil {
			return err
		}
		return withEnroller(cmd, func(ctx context.Context, e *enroll.Enroller) error {
			return e.Confirm(ctx, username)
		})
	},
}

func init() {
	rootCmd.AddCommand(confirmCmd)

	confirmCmd.Flags().StringP(
		"username",
		"u",
		"",
		`
			Username of the account to confirm. Prompted for if not set.
		`,
	)
}
