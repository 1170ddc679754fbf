package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"animal-sounds/internal/platform/httpclient"
)

func newClientCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running animal-sounds server",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "request timeout")

	newClient := func() (*httpclient.Client, error) {
		return httpclient.New(baseURL, timeout)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "GET /create",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := c.Create(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "created")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get-sound",
		Short: "GET /get-sound",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s, err := c.GetSound(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, s)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "GET /animals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			items, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	})

	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
