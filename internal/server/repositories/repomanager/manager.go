package repomanager

import (
	"context"
	"database/sql"

	"github.com/voclara/voclara/internal/dbx"
	"github.com/voclara/voclara/internal/server/repositories/settings"
	"github.com/voclara/voclara/internal/server/repositories/symbols"
	"github.com/voclara/voclara/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Settings(db dbx.DBTX) settings.Repository
	Symbols(db dbx.DBTX) symbols.Repository
}
