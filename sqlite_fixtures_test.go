package argbind

import (
	"database/sql"

	"github.com/rekby/fixenv"
	_ "modernc.org/sqlite"
)

// Database is an in-memory sqlite with intervals table, one per test.
func Database(e fixenv.Env) *sql.DB {
	f := func() (*fixenv.GenericResult[*sql.DB], error) {
		db, err := sql.Open("sqlite", ":memory:")
		if err != nil {
			return nil, err
		}
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)

		for _, query := range []string{
			`CREATE TABLE intervals(id INTEGER PRIMARY KEY, foo TEXT, us INTEGER, raw BLOB)`,
			`INSERT INTO intervals(id, foo) VALUES (1, '1 day 15:00:00')`,
			`INSERT INTO intervals(id, foo) VALUES (2, '40 days 00:22:00')`,
			`INSERT INTO intervals(id, foo) VALUES (3, '2 years 1 mon')`,
			`INSERT INTO intervals(id, foo) VALUES (5, 'forever')`,
		} {
			if _, err = db.Exec(query); err != nil {
				_ = db.Close()

				return nil, err
			}
		}

		return fixenv.NewGenericResultWithCleanup(db, func() {
			_ = db.Close()
		}), nil
	}

	return fixenv.CacheResult(e, f)
}
