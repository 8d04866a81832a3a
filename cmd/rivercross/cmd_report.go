package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivercross/plan"
	"github.com/katalvlaran/rivercross/report"
)

type reportFlags struct {
	planPath    string
	output      string
	metricsAddr string
}

func newReportCmd(a *app) *cobra.Command {
	f := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Solve a grid of instances and write the solution table as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.Context(), a, f)
		},
	}
	cmd.Flags().StringVar(&f.planPath, "plan", "", "YAML plan file (default plan when empty)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "CSV destination, '-' for stdout (overrides the plan)")
	cmd.Flags().StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while running")

	return cmd
}

func runReport(ctx context.Context, a *app, f *reportFlags) error {
	p := plan.Default()
	if f.planPath != "" {
		var err error
		if p, err = plan.Load(f.planPath); err != nil {
			return err
		}
	}
	if f.output != "" {
		p.Output = f.output
	}
	opts, err := p.ReportOptions()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts.Metrics = report.NewMetrics(reg)
	opts.Logger = a.logger
	if f.metricsAddr != "" {
		srv := &http.Server{Addr: f.metricsAddr, Handler: metricsMux(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", "addr", f.metricsAddr, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		a.logger.Info("serving metrics", "addr", f.metricsAddr)
	}

	rows, err := report.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	var w io.Writer = a.out
	if p.Output != "" && p.Output != "-" {
		file, err := os.Create(p.Output)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err = report.WriteCSV(w, rows); err != nil {
		return err
	}
	solved := 0
	for _, r := range rows {
		if r.Solvable {
			solved++
		}
	}
	a.logger.Info("report written", "output", p.Output, "rows", len(rows), "solved", solved)

	return nil
}

func metricsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return mux
}
