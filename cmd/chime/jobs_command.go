package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"chime/internal/github"
	"chime/internal/outcome"
)

func newJobsCommand(ctx *commandContext) *cobra.Command {
	var showSteps bool

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Show the current run's jobs and their classification",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCtx, err := ctx.runContext()
			if err != nil {
				return err
			}

			client, err := github.New(cfg.GitHub.Token.Value(), cfg.GitHub.APIURL,
				time.Duration(cfg.GitHub.RequestTimeout)*time.Second)
			if err != nil {
				return err
			}
			jobs, err := client.ListRunJobs(cmd.Context(), runCtx.Repository, runCtx.RunID)
			if err != nil {
				return fmt.Errorf("list workflow jobs: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %d of %s (%s)\n", runCtx.RunID, runCtx.Workflow, runCtx.Repository)
			fmt.Fprintln(out, renderJobsTable(jobs, showSteps))

			result := outcome.Classify(jobs)
			fmt.Fprintf(out, "Classification: %s\n", humanizeLabel(string(result.Conclusion)))
			if !result.Succeeded() {
				line := fmt.Sprintf("First failure: %s (job %d)", result.FailedJobName, result.FailedJobID)
				if result.FailedStepName != "" {
					line += fmt.Sprintf(" at step %q", result.FailedStepName)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSteps, "steps", false, "Include each job's steps")
	return cmd
}

func renderJobsTable(jobs []github.Job, showSteps bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Job", "Status", "Conclusion"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	for _, job := range jobs {
		tw.AppendRow(table.Row{
			strconv.FormatInt(job.ID, 10),
			job.Name,
			humanizeLabel(string(job.Status)),
			humanizeLabel(string(job.Conclusion)),
		})
		if !showSteps {
			continue
		}
		for _, step := range job.Steps {
			tw.AppendRow(table.Row{
				"",
				"  " + step.Name,
				humanizeLabel(string(step.Status)),
				humanizeLabel(string(step.Conclusion)),
			})
		}
	}
	return tw.Render()
}

var labelCaser = cases.Title(language.English)

// humanizeLabel turns API enums like "in_progress" into "In Progress".
func humanizeLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "-"
	}
	return labelCaser.String(strings.ReplaceAll(value, "_", " "))
}
