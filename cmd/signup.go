/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/spf13/cobra"
)

// signupCmd runs the registration step on its own.
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
	Long: `Prompts for an email, username, and password, and registers a new account
with the app client. The verification code is sent to the email.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnroller(cmd, func(ctx context.Context, e *enroll.Enroller) error {
			_, _, err := e.Register(ctx)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)
}
