package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"Smart-Grocery-Agent/cmd/config"
	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/utils"
	"Smart-Grocery-Agent/internal/utils/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFlag string
	rootCmd    = &cobra.Command{
		Use:   "grocery-agent",
		Short: "Smart grocery agent: pantry expiry tracking, restock nudges and a health-aware cart",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.LoadConfigFrom(configFlag)
			logger.SetLevel(utils.GetConfig("LOG_LEVEL"))
		},
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", utils.ConfigFile, "path to the YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Print expiry alerts and restock suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			return runAlerts(cmd.Context(), days, cmd.OutOrStdout())
		},
	}
	alertsCmd.Flags().IntP("days", "d", 0, "simulate this many days from today")

	notifyCmd := &cobra.Command{
		Use:   "notify",
		Short: "Email the notification digest to NOTIFY_EMAIL",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			return runNotify(cmd.Context(), days, cmd.OutOrStdout())
		},
	}
	notifyCmd.Flags().IntP("days", "d", 0, "simulate this many days from today")

	rootCmd.AddCommand(serveCmd, alertsCmd, notifyCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	log := logger.New("grocery-agent")

	services, err := config.NewServices(ctx, log)
	if err != nil {
		return err
	}

	app, err := config.NewApp(services, log)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	port := utils.GetConfig("APP_PORT")
	log.Info().Str("port", port).Msg("starting server")
	return app.Listen(":" + port)
}

func runAlerts(ctx context.Context, days int, out io.Writer) error {
	services, err := cliServices(ctx, days)
	if err != nil {
		return err
	}

	res := services.Pantry.GetNotifications(ctx)
	fmt.Fprintf(out, "Reference date: %s\n", res.ReferenceDate.Format("2006-01-02"))
	if res.Total == 0 {
		fmt.Fprintln(out, "Nothing to report.")
		return nil
	}
	for _, alert := range res.ExpiryAlerts {
		fmt.Fprintf(out, "[expiry]  %s\n", alert)
	}
	for _, suggestion := range res.RestockSuggestions {
		fmt.Fprintf(out, "[restock] %s\n", suggestion)
	}
	return nil
}

func runNotify(ctx context.Context, days int, out io.Writer) error {
	services, err := cliServices(ctx, days)
	if err != nil {
		return err
	}

	res, err := services.Notify.SendDigest(ctx)
	if err != nil {
		return err
	}
	if !res.Sent {
		fmt.Fprintln(out, "Nothing to report, no email sent.")
		return nil
	}
	fmt.Fprintf(out, "Sent %d notifications to %s\n", res.Total, res.Recipient)
	return nil
}

// cliServices logs to stderr so command output stays clean.
func cliServices(ctx context.Context, days int) (*config.Services, error) {
	log := logger.NewWithWriter("grocery-agent", zerolog.ConsoleWriter{Out: os.Stderr})

	services, err := config.NewServices(ctx, log)
	if err != nil {
		return nil, err
	}
	services.Pantry.SetSimulation(ctx, domain.SimulationRequest{DaysOffset: days})
	return services, nil
}
