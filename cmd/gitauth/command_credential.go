package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCredentialCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "credential",
		Short: "Show which credential variable is used",
		Long: `Show which recognized credential variable wins and the credential it
produces, with the secret masked. Prints "none" when no variable is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cred := a.cfg.Credential
			if cred == nil {
				fmt.Fprintln(out, "none")
				return nil
			}

			redacted := cred.Redacted()
			if redacted == "" {
				redacted = "(empty)"
			}
			fmt.Fprintf(out, "%s: %s\n", cred.Source, redacted)
			return nil
		},
	}
}
