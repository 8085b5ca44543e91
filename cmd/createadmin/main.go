package main

import (
	"bufio"   // Reading piped passwords
	"context" // Operation deadline
	"errors"  // Input errors
	"fmt"     // Prompts
	"io"      // EOF detection
	"os"      // Args, stdin and exit codes
	"strings" // Trimming line endings
	"time"    // Timeout

	"hotel_booking/internal/config"  // Configuration
	"hotel_booking/internal/db"      // Database connection and migrations
	"hotel_booking/internal/domain"  // Error classification
	"hotel_booking/internal/service" // Admin creation
	"hotel_booking/internal/utils"   // Logger setup

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/term"          // Hidden password input
)

// Creates an admin user: createadmin <username>
func main() {
	if len(os.Args) != 2 || strings.TrimSpace(os.Args[1]) == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin <username>")
		os.Exit(2)
	}
	username := strings.TrimSpace(os.Args[1])

	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	stdin := bufio.NewReader(os.Stdin)
	password, err := readPassword(stdin, fmt.Sprintf("Enter password for admin user '%s': ", username))
	if err != nil {
		logrus.Fatalf("failed to read password: %v", err)
	}
	confirm, err := readPassword(stdin, "Confirm password: ")
	if err != nil {
		logrus.Fatalf("failed to read password: %v", err)
	}
	if password != confirm {
		fmt.Fprintln(os.Stderr, "Error: Passwords do not match.")
		os.Exit(1)
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "Error: Password cannot be empty.")
		os.Exit(1)
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	auth := service.NewAuthService(gdb, cfg.JWTSecret, cfg.TokenTTL)
	if _, err := auth.CreateAdmin(ctx, username, password); err != nil {
		if domain.IsConflict(err) || domain.IsValidation(err) {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			os.Exit(1)
		}
		logrus.WithError(errors.Unwrap(err)).Error(err.Error())
		os.Exit(1)
	}
	fmt.Printf("Admin user '%s' created successfully!\n", username)
}

// readPassword hides input on a terminal and reads a plain line otherwise
func readPassword(stdin *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(b), err
	}
	line, err := stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
