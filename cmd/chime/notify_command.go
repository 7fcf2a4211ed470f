package main

import (
	"github.com/spf13/cobra"

	"chime/internal/notify"
)

func newNotifyCommand(ctx *commandContext) *cobra.Command {
	var startingFlag bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send the lifecycle notification for the current workflow run",
		Long: "Sends the starting notification when --starting (or the starting input) is\n" +
			"set, otherwise fetches the run's jobs, classifies the outcome, and sends\n" +
			"exactly one success, failure, or cancelled notification.",
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

			starting := cfg.Notify.Starting
			if cmd.Flags().Changed("starting") {
				starting = startingFlag
			}
			if starting {
				return svc.NotifyStart(cmd.Context())
			}
			return svc.NotifyCompletion(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&startingFlag, "starting", false, "Report the workflow start instead of its completion")
	return cmd
}
