// Package cli defines the cobra command tree for campshare.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campshare/campshare/internal/db"
)

var flagDB string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cs",
		Short:         "Share and browse campgrounds",
		Long:          "CampShare lists campgrounds with photos, geocoded locations, and user comments.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.campshare/campshare.db)")

	root.AddCommand(
		newServeCmd(),
		newAddUserCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag, the CS_DB_PATH
// environment variable, or the default path.
func openDB(configured string) (*sql.DB, error) {
	path := flagDB
	if path == "" {
		path = configured
	}
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
