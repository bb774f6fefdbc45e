package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/lifeflow/pkg/cleanup"
)

// Connect opens a pool shared by all repositories. The pool is closed on cleanup.
func Connect(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func ping(conn PgConnection, repo string) {
	if conn == nil {
		log.Fatal("nil connection for " + repo)
	}
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for " + repo + ": " + err.Error())
	}
}

// DATE columns travel as UTC midnights.

func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func nullDateArg(d *civil.Date) any {
	if d == nil {
		return nil
	}
	return dateArg(*d)
}

func nullDate(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}
