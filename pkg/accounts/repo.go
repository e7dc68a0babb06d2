package accounts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountRepository interface {
	CreateAccount(ctx context.Context, name, email, passwordHash, uuid string) (Account, error)
	GetAccountByUUID(ctx context.Context, uuid string) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	// Auth helper
	GetAccountAuthByEmail(ctx context.Context, email string) (string, string, error)
}

type postgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &postgresAccountRepository{pool: pool}
}

func (r *postgresAccountRepository) CreateAccount(ctx context.Context, name, email, passwordHash, uuid string) (Account, error) {
	query := `INSERT INTO accounts (name, email, password_hash, uuid, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING id, name, email, uuid, created_at`
	row := r.pool.QueryRow(ctx, query, name, email, passwordHash, uuid)

	var a Account
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.UUID, &a.CreatedAt); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetAccountByUUID(ctx context.Context, uuid string) (Account, error) {
	query := `SELECT id, name, email, uuid, created_at FROM accounts WHERE uuid = $1`
	row := r.pool.QueryRow(ctx, query, uuid)

	var a Account
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.UUID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	query := `SELECT id, name, email, uuid, created_at FROM accounts WHERE email = $1`
	row := r.pool.QueryRow(ctx, query, email)

	var a Account
	if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.UUID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *postgresAccountRepository) GetAccountAuthByEmail(ctx context.Context, email string) (string, string, error) {
	row := r.pool.QueryRow(ctx, "SELECT uuid, password_hash FROM accounts WHERE email = $1", email)

	var uuid, hash string
	if err := row.Scan(&uuid, &hash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", ErrAccountNotFound
		}
		return "", "", err
	}
	return uuid, hash, nil
}
