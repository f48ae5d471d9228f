package cmd

import (
	"fmt"

	"balebridge/internal/core/service"

	"github.com/spf13/cobra"
)

var webhookCmd = &cobra.Command{
	Use:   "webhook",
	Short: "Manage the bot's webhook registration",
}

func newRegistrar() (*service.Registrar, error) {
	c, err := newClients(cfg)
	if err != nil {
		return nil, err
	}

	return service.NewRegistrar(c.bot, cfg.Trigger.SecretToken), nil
}

var webhookInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the registered webhook",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRegistrar()
		if err != nil {
			return err
		}

		url, pending, err := r.Info(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "url: %s\npending updates: %d\n", url, pending)
		return nil
	},
}

var webhookSetCmd = &cobra.Command{
	Use:   "set [url]",
	Short: "Register a webhook URL, trigger.public_url by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := cfg.Trigger.PublicURL
		if len(args) == 1 {
			url = args[0]
		}
		if url == "" {
			return fmt.Errorf("no webhook url given")
		}

		r, err := newRegistrar()
		if err != nil {
			return err
		}

		exists, err := r.CheckExists(cmd.Context(), url)
		if err != nil {
			return err
		}
		if exists {
			fmt.Fprintln(cmd.OutOrStdout(), "webhook already registered")
			return nil
		}

		ok, err := r.Create(cmd.Context(), url)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "registered: %t\n", ok)
		return nil
	},
}

var webhookDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the webhook registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRegistrar()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted: %t\n", r.Delete(cmd.Context()))
		return nil
	},
}

func init() {
	webhookCmd.AddCommand(webhookInfoCmd, webhookSetCmd, webhookDeleteCmd)
	rootCmd.AddCommand(webhookCmd)
}
