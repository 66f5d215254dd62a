// Package useradm implements the operator tool that creates an admin account
// directly in the database, bypassing the HTTP registration endpoint.
package useradm

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/voclara/voclara/internal/common"
	"github.com/voclara/voclara/internal/dbx"
	"github.com/voclara/voclara/internal/server/auth"
	"github.com/voclara/voclara/internal/server/config"
	"github.com/voclara/voclara/internal/server/models"
	"github.com/voclara/voclara/internal/server/repositories/repomanager"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

type App struct {
	config  *config.Config
	db      *sql.DB
	manager repomanager.RepositoryManager
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return &App{config: cfg, db: db, manager: m, out: os.Stdout}, nil
}

// promptPassword reads the password twice without echo and verifies both
// entries match. The raw input buffers are zeroed before returning.
func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	first, err := readPassword()
	fmt.Fprintln(a.out)
	defer common.WipeByteArray(first)
	if err != nil {
		return "", fmt.Errorf("password input error: %w", err)
	}

	fmt.Fprint(a.out, "Repeat password: ")
	second, err := readPassword()
	fmt.Fprintln(a.out)
	defer common.WipeByteArray(second)
	if err != nil {
		return "", fmt.Errorf("password input error: %w", err)
	}

	if !bytes.Equal(first, second) {
		return "", errors.New("passwords do not match")
	}

	return string(first), nil
}

// Run creates an active admin user with the given email and name. Migrations
// are applied first so the tool works against an empty database.
func (a *App) Run(ctx context.Context, email, name string) error {
	defer a.db.Close()

	if email == "" {
		return errors.New("email is required")
	}
	if name == "" {
		return errors.New("name is required")
	}

	password, err := a.promptPassword()
	if err != nil {
		return err
	}

	hasher := auth.NewPasswordHasher(a.config.PasswordHashCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("password error: %w", err)
	}

	if err := a.manager.RunMigrations(ctx, a.db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.manager.Users(tx)
		u, err := repo.Create(ctx, &models.User{
			Email:           email,
			Name:            name,
			HashedPassword:  hash,
			UserType:        models.UserTypeAdmin,
			Status:          models.UserStatusActive,
			FavoritePhrases: []string{},
			IsActive:        true,
		})
		if err != nil {
			return err
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("an account with email %s already exists", email)
		}
		return err
	}

	fmt.Fprintf(a.out, "Created admin user %s (%s)\n", created.Email, created.ID)
	return nil
}
