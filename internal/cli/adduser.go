package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/campshare/campshare/internal/auth"
	"github.com/campshare/campshare/internal/config"
)

func newAddUserCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "adduser <username>",
		Short: "Create a user account",
		Long:  "Create a user account directly in the database, for bootstrapping without the web UI.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddUser(args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (prompted if omitted)")

	return cmd
}

func runAddUser(username, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	database, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	user, err := auth.NewUserStore(database).Create(username, password)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %s (id %d)\n", user.Username, user.ID)
	return nil
}
