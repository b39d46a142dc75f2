package pg

import (
	"errors"
	"io/fs"

	"github.com/code19m/errx"
	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/uptrace/bun"
)

// RunMigrations applies all pending schema migrations from the given
// filesystem. Migration files follow the golang-migrate naming convention
// (NNNN_name.up.sql / NNNN_name.down.sql). Already-applied migrations are
// skipped.
func RunMigrations(db *bun.DB, fsys fs.FS) error {
	source, err := iofs.New(fsys, ".")
	if err != nil {
		return errx.Wrap(err)
	}

	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return errx.Wrap(err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return errx.Wrap(err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errx.Wrap(err)
	}

	return nil
}
