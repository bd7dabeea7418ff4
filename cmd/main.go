package main

import (
	"context"
	"fmt"
	"os"

	"homecare-scheduler/cmd/bootstrap"
	"homecare-scheduler/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "homecare",
		Short:         "Home-care visit scheduler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, _ := cmd.Flags().GetInt("seed-patients")
			doctors, _ := cmd.Flags().GetInt("seed-doctors")
			seed, _ := cmd.Flags().GetUint64("seed")

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg, bootstrap.SeedOptions{Patients: patients, Doctors: doctors, Seed: seed})
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			// Run the application
			app.Run()
			return nil
		},
	}
	cmd.Flags().Int("seed-patients", 0, "Number of fake patients to add at startup")
	cmd.Flags().Int("seed-doctors", 0, "Number of fake doctors to add at startup")
	cmd.Flags().Uint64("seed", 0, "Seed for the fake records (0 picks one at random)")
	return cmd
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule from patient and doctor CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts bootstrap.GenerateOptions
			opts.PatientsFile, _ = cmd.Flags().GetString("patients")
			opts.DoctorsFile, _ = cmd.Flags().GetString("doctors")
			opts.StartDate, _ = cmd.Flags().GetString("start")
			opts.Duration, _ = cmd.Flags().GetInt("duration")
			opts.Strategy, _ = cmd.Flags().GetString("strategy")
			opts.OutFile, _ = cmd.Flags().GetString("out")

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := bootstrap.SetupLogger(cfg.App); err != nil {
				return err
			}

			session, err := bootstrap.NewSession(cfg, logrus.StandardLogger())
			if err != nil {
				return err
			}
			defer session.Close()

			result, err := session.GenerateFromFiles(context.Background(), opts)
			if err != nil {
				return err
			}
			if !result.Generated {
				return fmt.Errorf("%s", result.Warning)
			}

			logrus.Infof("Wrote %d visits to %s", result.Total, opts.OutFile)
			return nil
		},
	}
	cmd.Flags().String("patients", "patients.csv", "Patients CSV file")
	cmd.Flags().String("doctors", "doctors.csv", "Doctors CSV file")
	cmd.Flags().String("start", "", "First visit date, YYYY-MM-DD (default today)")
	cmd.Flags().Int("duration", 0, "Visit length in minutes (default from config)")
	cmd.Flags().String("strategy", "", "Doctor assignment strategy: random or round_robin (default from config)")
	cmd.Flags().String("out", "schedule.csv", "Output schedule CSV file")
	return cmd
}
