package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chime/internal/notify"
)

func newTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification to the configured webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, err := ctx.runContext()
			if err != nil {
				return err
			}

			svc, err := notify.NewService(cfg, runCtx, ctx.ensureLogger())
			if err != nil {
				return err
			}
			if err := svc.NotifyTest(cmd.Context()); err != nil {
				return fmt.Errorf("test notification failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Test notification sent")
			return nil
		},
	}
}
