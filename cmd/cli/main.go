package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/logger"
	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

// Seam for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "myfinances-cli",
		Short: "My Finances CLI tool",
		Long:  `A command line interface for operating a My Finances deployment.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(accountsCmd())
	rootCmd.AddCommand(hashPasswordCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, status, err := get("/ready", "")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("not ready (status %d): %s", status, body)
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(result)
			return nil
		},
	}
}

func accountsCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List your bank accounts with derived balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, status, err := get("/api/bankaccounts", token)
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return fmt.Errorf("request failed (status %d): %s", status, body)
			}

			var result struct {
				BankAccounts []struct {
					ID            string `json:"id"`
					Name          string `json:"name"`
					InitialAmount string `json:"initialAmount"`
					TotalAmount   string `json:"totalAmount"`
				} `json:"bankAccounts"`
				Total int64 `json:"total"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Printf("%-21s  %-20s  %12s  %12s\n", "ID", "NAME", "INITIAL", "TOTAL")
			for _, a := range result.BankAccounts {
				fmt.Printf("%-21s  %-20s  %12s  %12s\n", a.ID, truncate(a.Name, 20), a.InitialAmount, a.TotalAmount)
			}
			fmt.Printf("total: %d\n", result.Total)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Access token")
	cmd.MarkFlagRequired("token")

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var databaseURL, migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Run database migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(logger.Config{Level: "info", Format: "console"})

			switch args[0] {
			case "up":
				return postgres.RunMigrations(databaseURL, migrationsPath, log)
			case "down":
				return postgres.RunMigrationsDown(databaseURL, migrationsPath, log)
			default:
				return fmt.Errorf("unknown direction %q, want up or down", args[0])
			}
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection URL")
	cmd.Flags().StringVar(&migrationsPath, "migrations", "migrations", "Path to the migrations directory")

	return cmd
}

func get(path, token string) ([]byte, int, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
