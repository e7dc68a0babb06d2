package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestAccount inserts a minimal valid account row and returns its UUID.
func CreateTestAccount(t *testing.T, db *pgxpool.Pool) string {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	name := fmt.Sprintf("test-account-%d", suffix)
	email := fmt.Sprintf("%s@example.com", name)
	accountUUID := uuid.NewString()

	_, err := db.Exec(ctx, "INSERT INTO accounts (name, email, password_hash, uuid) VALUES ($1, $2, 'hash', $3)", name, email, accountUUID)
	require.NoError(t, err)
	return accountUUID
}

// MintTestNFT inserts an unlisted NFT for the given owner and returns its ID.
func MintTestNFT(t *testing.T, db *pgxpool.Pool, ownerUUID string) int64 {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	tokenURI := fmt.Sprintf("ipfs://test-token-%d", suffix)

	var id int64
	err := db.QueryRow(ctx, "INSERT INTO nfts (owner_uuid, token_uri) VALUES ($1, $2) RETURNING id", ownerUUID, tokenURI).Scan(&id)
	require.NoError(t, err)
	return id
}

// FundTestWallet credits the given account wallet, creating it if absent.
func FundTestWallet(t *testing.T, db *pgxpool.Pool, accountUUID string, amount int64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `INSERT INTO wallets (account_uuid, balance) VALUES ($1, $2)
        ON CONFLICT (account_uuid) DO UPDATE SET balance = wallets.balance + EXCLUDED.balance`, accountUUID, amount)
	require.NoError(t, err)
}

// ResetTreasury zeroes the pooled balance so balance assertions start clean.
func ResetTreasury(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "UPDATE treasury SET balance = 0 WHERE id = 1")
	require.NoError(t, err)
}
