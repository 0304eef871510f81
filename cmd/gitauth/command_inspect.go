package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/gitauth/pkg/gitutil"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [REPOSITORY_URL]",
		Short: "Show how a repository URL is parsed",
		Long: `Show the host, path and declared protocols of a repository URL, and the
transport an authenticated URL would use.`,
		Args: maxOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			repositoryURL, err := a.repositoryURL(args)
			if err != nil {
				return err
			}

			remote, err := gitutil.ParseRemote(repositoryURL)
			if err != nil {
				return newURLError("failed to parse repository URL", err)
			}

			protocols := make([]string, 0, len(remote.Protocols()))
			for _, p := range remote.Protocols() {
				protocols = append(protocols, string(p))
			}

			host := remote.Host
			if remote.Port != 0 {
				host = fmt.Sprintf("%s:%d", remote.Host, remote.Port)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host:      %s\n", host)
			fmt.Fprintf(out, "owner:     %s\n", remote.Owner())
			fmt.Fprintf(out, "name:      %s\n", remote.Name())
			fmt.Fprintf(out, "protocols: %s\n", strings.Join(protocols, ","))
			fmt.Fprintf(out, "transport: %s\n", gitutil.SelectProtocol(remote.Protocols()))
			return nil
		},
	}
}
