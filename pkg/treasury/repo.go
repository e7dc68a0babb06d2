package treasury

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TreasuryRepository interface {
	GetPooledBalance(ctx context.Context) (int64, error)
	GetWalletBalance(ctx context.Context, accountUUID string) (int64, error)
	Deposit(ctx context.Context, accountUUID string, amount int64) (int64, error)
	Withdraw(ctx context.Context, adminUUID string) (int64, error)
}

type postgresTreasuryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresTreasuryRepository(pool *pgxpool.Pool) TreasuryRepository {
	return &postgresTreasuryRepository{pool: pool}
}

func (r *postgresTreasuryRepository) GetPooledBalance(ctx context.Context) (int64, error) {
	var balance int64
	if err := r.pool.QueryRow(ctx, "SELECT balance FROM treasury WHERE id = 1").Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *postgresTreasuryRepository) GetWalletBalance(ctx context.Context, accountUUID string) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, "SELECT balance FROM wallets WHERE account_uuid = $1", accountUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrWalletNotFound
		}
		return 0, err
	}
	return balance, nil
}

func (r *postgresTreasuryRepository) Deposit(ctx context.Context, accountUUID string, amount int64) (int64, error) {
	query := `INSERT INTO wallets (account_uuid, balance) VALUES ($1, $2)
              ON CONFLICT (account_uuid) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance
              RETURNING balance`

	var balance int64
	if err := r.pool.QueryRow(ctx, query, accountUUID, amount).Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}

// Withdraw zeroes the pooled balance and credits the full amount to the
// admin wallet in one transaction. If the wallet credit fails nothing moves.
func (r *postgresTreasuryRepository) Withdraw(ctx context.Context, adminUUID string) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var balance int64
	if err := tx.QueryRow(ctx, "SELECT balance FROM treasury WHERE id = 1 FOR UPDATE").Scan(&balance); err != nil {
		return 0, err
	}

	pooled := NewLedger(balance)
	amount := pooled.Balance()
	if err := pooled.Debit(amount); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, "UPDATE treasury SET balance = $1 WHERE id = 1", pooled.Balance()); err != nil {
		return 0, err
	}

	creditQuery := `INSERT INTO wallets (account_uuid, balance) VALUES ($1, $2)
                    ON CONFLICT (account_uuid) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`
	if _, err := tx.Exec(ctx, creditQuery, adminUUID, amount); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return amount, nil
}

// DebitWallet debits an account wallet inside the caller-supplied transaction.
func DebitWallet(ctx context.Context, tx pgx.Tx, accountUUID string, amount int64) error {
	var balance int64
	err := tx.QueryRow(ctx, "SELECT balance FROM wallets WHERE account_uuid = $1 FOR UPDATE", accountUUID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWalletNotFound
		}
		return err
	}

	wallet := NewLedger(balance)
	if err := wallet.Debit(amount); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, "UPDATE wallets SET balance = $1 WHERE account_uuid = $2", wallet.Balance(), accountUUID)
	return err
}

// CreditPool credits the pooled custodial balance inside the caller-supplied
// transaction.
func CreditPool(ctx context.Context, tx pgx.Tx, amount int64) error {
	var balance int64
	if err := tx.QueryRow(ctx, "SELECT balance FROM treasury WHERE id = 1 FOR UPDATE").Scan(&balance); err != nil {
		return err
	}

	pooled := NewLedger(balance)
	if err := pooled.Credit(amount); err != nil {
		return err
	}

	_, err := tx.Exec(ctx, "UPDATE treasury SET balance = $1 WHERE id = 1", pooled.Balance())
	return err
}
