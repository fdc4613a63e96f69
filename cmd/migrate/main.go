package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/erp/mfgdesk/internal/infrastructure/config"
	"github.com/erp/mfgdesk/internal/infrastructure/logger"
	"github.com/erp/mfgdesk/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

type options struct {
	migrationsPath string
	logLevel       string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the PostgreSQL schema of mfgdesk",
		Long:          "Applies the SQL files under migrations/. SQLite and MySQL deployments use auto_migrate instead.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.migrationsPath, "path", "", "path to migrations directory (default: ./migrations)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: opts.withMigrator(func(m *migration.Migrator, _ []string) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: opts.withMigrator(func(m *migration.Migrator, _ []string) error {
				return m.Down()
			}),
		},
		&cobra.Command{
			Use:   "step N",
			Short: "Apply N migrations; a negative N rolls back",
			Args:  cobra.ExactArgs(1),
			RunE: opts.withMigrator(func(m *migration.Migrator, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q: %w", args[0], err)
				}
				return m.Steps(n)
			}),
		},
		&cobra.Command{
			Use:   "goto VERSION",
			Short: "Migrate up or down to VERSION",
			Args:  cobra.ExactArgs(1),
			RunE: opts.withMigrator(func(m *migration.Migrator, args []string) error {
				v, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return m.GoTo(uint(v))
			}),
		},
		&cobra.Command{
			Use:   "force VERSION",
			Short: "Mark VERSION as applied without running it (clears a dirty schema)",
			Args:  cobra.ExactArgs(1),
			RunE: opts.withMigrator(func(m *migration.Migrator, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return m.Force(v)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: opts.withMigrator(func(m *migration.Migrator, _ []string) error {
				status, err := m.Status()
				if err != nil {
					return err
				}
				if !status.Applied {
					fmt.Println("No migrations applied")
					return nil
				}
				fmt.Printf("Version: %d (dirty: %t)\n", status.Version, status.Dirty)
				return nil
			}),
		},
		newDropCommand(opts),
		newCreateCommand(opts),
		&cobra.Command{
			Use:   "list",
			Short: "List migration files",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				names, err := migration.ListMigrations(opts.path())
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			},
		},
	)
	return root
}

func newDropCommand(opts *options) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop every table in the database",
		Args:  cobra.NoArgs,
		RunE: opts.withMigrator(func(m *migration.Migrator, _ []string) error {
			if !confirm {
				return fmt.Errorf("refusing to drop without --yes")
			}
			return m.Drop()
		}),
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm dropping all data")
	return cmd
}

func newCreateCommand(opts *options) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an empty up/down migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := migration.CreateMigration(opts.path(), args[0], description)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created:", file.UpPath)
			fmt.Fprintln(cmd.OutOrStdout(), "Created:", file.DownPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "description written into the file header")
	return cmd
}

// path resolves the migrations directory: the flag, then ./migrations, then
// migrations next to the binary's repository root.
func (o *options) path() string {
	if o.migrationsPath != "" {
		return o.migrationsPath
	}
	if _, err := os.Stat(defaultMigrationsPath); err == nil {
		return defaultMigrationsPath
	}
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return defaultMigrationsPath
}

// withMigrator opens the configured database and hands a Migrator to run
func (o *options) withMigrator(run func(*migration.Migrator, []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		log, err := logger.New(&logger.Config{
			Level:      o.logLevel,
			Format:     "console",
			Output:     "stdout",
			TimeFormat: "2006-01-02 15:04:05",
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = logger.Sync(log) }()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("SQL migrations target postgres; driver %q uses database.auto_migrate", cfg.Database.Driver)
		}

		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		path := o.path()
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve migrations path: %w", err)
		}
		log.Debug("Using migrations", zap.String("path", abs))

		m, err := migration.New(db, abs, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(); err != nil {
				log.Warn("Failed to close migrator", zap.Error(err))
			}
		}()
		return run(m, args)
	}
}
