package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

var version = "dev" // set by the linker

var cfgFile string

// Services shared by all subcommands, wired in PersistentPreRunE once the
// configuration has been resolved.
var (
	generatorService *service.GeneratorService
	historyService   *service.HistoryService
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd = newRootCmd()

	// Defaults apply when neither the config file, the environment nor a
	// flag provides a value.
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "./passforge.db")
	viper.SetDefault("history.limit", repository.DefaultHistoryLimit)
}

// newRootCmd creates and configures a new root cobra command. Tests use it to
// get fresh instances without touching the shared package state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "PassForge is a password generator with a local history.",
		Long: `PassForge generates random passwords from selectable character classes,
scores their strength and keeps a capped history of what it generated,
along with summary statistics over that history.

History lives in a local SQLite file by default; PostgreSQL and MySQL
backends are available through --db-driver and --db-dsn.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Viper has already read the config by this point.
			return initServices(cmd.Context())
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newClearCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./passforge.yaml or $HOME/passforge.yaml)")
	cmd.PersistentFlags().String("db-driver", "sqlite", "history database driver (sqlite, postgres, mysql, memory)")
	cmd.PersistentFlags().String("db-dsn", "./passforge.db", "history database connection string (DSN)")
	cmd.PersistentFlags().Int("history-limit", repository.DefaultHistoryLimit, "number of history records to retain")

	viper.BindPFlag("database.driver", cmd.PersistentFlags().Lookup("db-driver"))
	viper.BindPFlag("database.dsn", cmd.PersistentFlags().Lookup("db-dsn"))
	viper.BindPFlag("history.limit", cmd.PersistentFlags().Lookup("history-limit"))

	return cmd
}

// initConfig reads in a configuration file and environment variables. The
// config file is optional; environment variables use the PASSFORGE_ prefix
// (PASSFORGE_DATABASE_DRIVER, PASSFORGE_DATABASE_DSN, PASSFORGE_HISTORY_LIMIT).
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("passforge")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PASSFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, anything else deserves a warning.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("could not read config file", "error", err)
		}
	}
}

// initServices opens the configured history store and wires the services
// every subcommand relies on.
func initServices(ctx context.Context) error {
	driver := viper.GetString("database.driver")
	dsn := viper.GetString("database.dsn")
	limit := viper.GetInt("history.limit")

	store, err := openHistoryStore(ctx, driver, dsn, limit)
	if err != nil {
		return err
	}

	generatorService = service.NewGeneratorService(generator.New(nil), store)
	historyService = service.NewHistoryService(store)
	return nil
}

// openHistoryStore opens the history backend for the given driver. The
// memory driver keeps records only for the current invocation.
func openHistoryStore(ctx context.Context, driver, dsn string, limit int) (service.HistoryStore, error) {
	if driver == "memory" {
		return repository.NewMemoryHistoryRepository(limit), nil
	}

	db, err := repository.NewDB(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	repo, err := repository.NewHistoryRepository(ctx, db, limit)
	if err != nil {
		return nil, fmt.Errorf("prepare history schema: %w", err)
	}
	return repo, nil
}

// promptForConfirmation displays a prompt and reads a line from stdin.
func promptForConfirmation(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	return strings.TrimSpace(strings.ToLower(answer))
}
