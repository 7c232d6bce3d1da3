package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/RazanRezq/jadara-sub002/internal/config"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/logger"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

func openDatabase() (*database.DBinstanceStruct, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	return database.NewDBInstance(database.NewDBConfig(cfg, log))
}

// generateRandomString creates a random hex string of 2n characters
func generateRandomString(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// generateUniqueUsername tries until a free username is found
func generateUniqueUsername(db *gorm.DB) (string, error) {
	for {
		suffix, err := generateRandomString(4)
		if err != nil {
			return "", err
		}
		username := "admin_" + suffix
		var count int64
		if err := db.Unscoped().Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return username, nil
		}
	}
}

func createAdminCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a superadmin with random credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return fmt.Errorf("database failed to initialize: %w", err)
			}
			defer db.Close()

			if username == "" {
				if username, err = generateUniqueUsername(db.DB); err != nil {
					return err
				}
			}
			password, err := generateRandomString(8)
			if err != nil {
				return err
			}

			admin, err := utilities.CreateAdmin(password, username, db.DB)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Superadmin credentials generated successfully!")
			fmt.Fprintln(out, "======================================")
			fmt.Fprintf(out, "Username: %s\n", admin.Username)
			fmt.Fprintf(out, "Password: %s\n", password)
			fmt.Fprintln(out, "======================================")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username of the new superadmin, random when empty")
	return cmd
}

// confirm reads one line from in and reports whether it is "yes".
func confirm(in io.Reader) (bool, error) {
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(strings.ToLower(input)) == "yes", nil
}

func cleanDBCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean-db",
		Short: "Drop every table in the public schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintln(out, "WARNING: This command will DROP ALL TABLES in the 'public' schema of your database.")
				fmt.Fprint(out, "This action is irreversible. Do you want to continue? (yes/no): ")
				ok, err := confirm(cmd.InOrStdin())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Operation cancelled.")
					return nil
				}
			}

			db, err := openDatabase()
			if err != nil {
				return fmt.Errorf("database failed to initialize: %w", err)
			}
			defer db.Close()

			if err := db.DropAllTables(); err != nil {
				return fmt.Errorf("failed to execute drop command: %w", err)
			}
			fmt.Fprintln(out, "All tables dropped successfully.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
