package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jfmyers9/pandora/internal/config"
	"github.com/jfmyers9/pandora/internal/secrets"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authEmail string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Pandora account",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the account password",
	Long: `Log in to Pandora and store the account password.

You will be prompted for the account email and password. The
credentials are verified against the service, then the password is
stored in the desktop keyring (or, if the keyring cannot be unlocked,
kept for this session only) and the email is saved to the config file.

If a different account was configured before, its stored password is
cleared so only one account entry remains.`,
	RunE: runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored account password",
	RunE:  runAuthLogout,
}

func init() {
	authLoginCmd.Flags().StringVar(&authEmail, "email", "", "Account email (prompted if not given)")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := newLogger()
	reader := bufio.NewReader(os.Stdin)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	email := authEmail
	if email == "" {
		fmt.Print("Pandora account email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("an account email is required")
	}

	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := string(passwordBytes)
	if password == "" {
		return fmt.Errorf("a password is required")
	}

	// Verify the credentials before touching the keyring.
	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	listener, err := client.Auth().Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	store, err := secrets.Open()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Unlock(ctx); err != nil {
		return err
	}
	if err := store.SetPassword(ctx, cfg.Email, email, password); err != nil {
		return err
	}

	cfg.Email = email
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Logged in as %s", listener.Username)
	if listener.HiFiAvailable {
		fmt.Print(" (HiFi available)")
	}
	fmt.Println()
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Email == "" {
		fmt.Println("No account configured.")
		return nil
	}

	store, err := secrets.Open()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Unlock(ctx); err != nil {
		return err
	}
	removed, err := store.ClearPassword(ctx, cfg.Email)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("Cleared stored password for %s\n", cfg.Email)
	} else {
		fmt.Printf("No password stored for %s\n", cfg.Email)
	}
	return nil
}
