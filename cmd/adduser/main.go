package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"makecents/internal/auth"
	"makecents/internal/config"
	"makecents/internal/db"
	apperrors "makecents/internal/errors"
	"makecents/internal/repository"
	"makecents/internal/service"
)

// accounts is what adduser needs from the service layer.
type accounts struct {
	auth       service.AuthService
	categories service.CategoryService
	// close releases the database connection pool.
	close func() error
}

// connect opens the store configured by the environment.
var connect = func() (*accounts, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hasher, err := auth.NewHasher(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(cfg.MySQLDSN, false); err != nil {
		return nil, err
	}
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	return &accounts{
		close:      sqlDB.Close,
		auth:       service.NewAuthService(repository.NewUserRepository(gormDB), hasher, auth.NewAuthenticator(hasher)),
		categories: service.NewCategoryService(repository.NewCategoryRepository(gormDB), nil),
	}, nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	categoriesFlag := fs.String("categories", "", "Comma separated starter categories")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> [-password <password>] [-categories Food,Rent]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	acc, err := connect()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := acc.close(); err != nil {
			slog.Warn("closing database", "error", err)
		}
	}()

	ctx := context.Background()
	user, err := acc.auth.Signup(ctx, *username, password)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return fmt.Errorf("user %s already exists", *username)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	fmt.Fprintf(stdout, "User %s created successfully with ID %d\n", user.Username, user.ID)

	for _, label := range splitLabels(*categoriesFlag) {
		if _, err := acc.categories.Create(ctx, user.ID, label); err != nil {
			return fmt.Errorf("failed to create category %q: %w", label, err)
		}
		fmt.Fprintf(stdout, "Category %s added\n", label)
	}
	return nil
}

func splitLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
