/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/spf13/cobra"
)

// loginCmd runs the authentication step on its own.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with a username and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnroller(cmd, func(ctx context.Context, e *enroll.Enroller) error {
			_, err := e.Login(ctx)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
