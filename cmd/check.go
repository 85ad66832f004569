package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/progtools/conplan/app"
	"github.com/progtools/conplan/config"
	"github.com/progtools/conplan/pkg/export"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print conflicts and diagnostics without writing reports",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	a, err := svc.Analyze(ctx)
	if err != nil {
		return err
	}

	prog := &export.Program{
		Res:           a.Res,
		People:        a.People,
		Report:        a.Report,
		MissingPrecis: a.MissingPrecis,
	}
	out := cmd.OutOrStdout()
	sections := []struct {
		title string
		write func(io.Writer, *export.Program) error
	}{
		{"Self conflicts", export.WriteSelfConflicts},
		{"Availability conflicts", export.WriteAvailabilityConflicts},
		{"Unknown people", export.WriteUnknownPeople},
		{"Similar names", export.WriteSimilarNames},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(out, "== %s ==\n", s.title); err != nil {
			return err
		}
		if err := s.write(out, prog); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(out, "== Diagnostics ==\n"); err != nil {
		return err
	}
	for _, d := range a.Diags.All() {
		if _, err := fmt.Fprintln(out, d); err != nil {
			return err
		}
	}
	if a.Diags.Count() == 0 {
		if _, err := fmt.Fprintln(out, "None found."); err != nil {
			return err
		}
	}
	return nil
}
