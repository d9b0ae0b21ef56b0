package repository

import (
	"context"
	"errors"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Global error declarations.
var (
	ErrTickerNotFound   = errors.New("not found in datasource")
	ErrNoPrices         = errors.New("no monthly prices found in datasource")
	ErrMalformedRecord  = errors.New("malformed price record")
	ErrNonPositivePrice = errors.New("price must be positive")
)

type priceSource interface {
	AssetIDByTicker(ctx context.Context, ticker string) (int, error)
	MonthlyCloses(ctx context.Context, assetID int) ([]monthlyCloseRow, error)
}

// Database holds the database connection behind a mockable price source.
type Database struct {
	prices priceSource
	conn   *pgxpool.Pool
}

// NewDatabase creates a new Database instance and verifies connectivity.
func NewDatabase(dbURL string) (Database, error) {
	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return Database{}, fmt.Errorf("parse config: %w", err)
	}
	// Register shopspring decimal
	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	conn, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return Database{}, err
	}
	// Ensure the connection is established.
	if err := conn.Ping(context.Background()); err != nil {
		return Database{}, err
	}

	return Database{
		prices: &pgxPriceSource{pool: conn},
		conn:   conn,
	}, nil
}

func (db *Database) Close() {
	db.conn.Close()
}
