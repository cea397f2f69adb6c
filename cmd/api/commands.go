package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"estimaflow/internal/adapter/http/routes"
	"estimaflow/internal/config"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase"
	"estimaflow/pkg/money"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "estimaflow",
		Short:        "Estimation and project administration API",
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		newServeCmd(),
		newTotalsCmd(),
		newHashPasswordCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.Global().Error().Err(err).Msg("server stopped with error")
		return err
	}
	return nil
}

func newTotalsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Print the pricing breakdown of an estimation JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var e entities.Estimation
			if err := json.NewDecoder(in).Decode(&e); err != nil {
				return fmt.Errorf("decode estimation: %w", err)
			}
			return printBreakdown(cmd.OutOrStdout(), e)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Estimation JSON file (stdin when empty or -)")
	return cmd
}

func printBreakdown(out io.Writer, e entities.Estimation) error {
	b := pricing.Breakdown(e.Sections)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	if e.Name != "" {
		fmt.Fprintf(w, "%s\t\t\t\n", e.Name)
	}
	fmt.Fprintln(w, "Item\tBase\tMargin\tTotal\t")
	for _, s := range b.Sections {
		for _, it := range s.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", it.Title, money.Format(it.Base), money.Format(it.Margin), money.Format(it.Total))
		}
		fmt.Fprintf(w, "Subtotal %s\t%s\t%s\t%s\t\n", s.Title, money.Format(s.SubTotal), money.Format(s.Margin), money.Format(s.Total))
	}
	fmt.Fprintf(w, "Sub Total\t\t\t%s\t\n", money.Format(b.Totals.SubTotal))
	fmt.Fprintf(w, "Total Margin\t\t\t%s\t\n", money.Format(b.Totals.TotalMargin))
	fmt.Fprintf(w, "Total Amount\t\t\t%s\t\n", money.Format(b.Totals.TotalAmount))
	return w.Flush()
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash stored for a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password is empty")
			}

			hash, err := usecase.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
