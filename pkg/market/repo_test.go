package market

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/nfts"
	"github.com/Bukola-tech/NFTMarketHub/pkg/testhelpers"
	"github.com/Bukola-tech/NFTMarketHub/pkg/treasury"
)

func setupMarketTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping market repository tests")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(pool.Close)
	return pool
}

func TestPostgresMarketRepository_ListNFT(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, owner)

	listing, err := repo.ListNFT(ctx, id, owner, 100)
	require.NoError(t, err)
	require.True(t, listing.IsListed)
	require.Equal(t, int64(100), listing.Price)

	got, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	require.True(t, got.IsListed)
	require.Equal(t, int64(100), got.Price)
}

func TestPostgresMarketRepository_ListNFT_Overwrite(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, owner)

	_, err := repo.ListNFT(ctx, id, owner, 100)
	require.NoError(t, err)
	listing, err := repo.ListNFT(ctx, id, owner, 250)
	require.NoError(t, err)
	require.Equal(t, int64(250), listing.Price)
	require.True(t, listing.IsListed)
}

func TestPostgresMarketRepository_ListNFT_NotOwner(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)
	intruder := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, owner)

	_, err := repo.ListNFT(ctx, id, intruder, 100)
	require.ErrorIs(t, err, access.ErrNotOwner)

	// Listing state unchanged
	got, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	require.False(t, got.IsListed)
}

func TestPostgresMarketRepository_ListNFT_UnknownAsset(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)

	_, err := repo.ListNFT(ctx, 999999999, owner, 100)
	require.ErrorIs(t, err, nfts.ErrNFTNotFound)
}

func TestPostgresMarketRepository_DelistNFT(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, owner)

	_, err := repo.ListNFT(ctx, id, owner, 100)
	require.NoError(t, err)

	listing, err := repo.DelistNFT(ctx, id, owner)
	require.NoError(t, err)
	require.False(t, listing.IsListed)
}

func TestPostgresMarketRepository_DelistNFT_WhenUnlisted_NoOp(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	owner := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, owner)

	listing, err := repo.DelistNFT(ctx, id, owner)
	require.NoError(t, err)
	require.False(t, listing.IsListed)
}

func TestPostgresMarketRepository_Buy_TransfersOwnershipAndFunds(t *testing.T) {
	pool := setupMarketTestPool(t)
	testhelpers.ResetTreasury(t, pool)

	repo := NewPostgresMarketRepository(pool)
	nftRepo := nfts.NewPostgresNFTRepository(pool)
	treasuryRepo := treasury.NewPostgresTreasuryRepository(pool)
	ctx := context.Background()

	seller := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, buyer, 500)

	_, err := repo.ListNFT(ctx, id, seller, 100)
	require.NoError(t, err)

	sale, err := repo.Buy(ctx, id, buyer, 100)
	require.NoError(t, err)
	require.Equal(t, seller, sale.SellerUUID)
	require.Equal(t, buyer, sale.BuyerUUID)
	require.Equal(t, int64(100), sale.Price)
	require.Equal(t, int64(100), sale.Payment)

	newOwner, err := nftRepo.OwnerOf(ctx, id)
	require.NoError(t, err)
	require.Equal(t, buyer, newOwner)

	listing, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	require.False(t, listing.IsListed)

	buyerBalance, err := treasuryRepo.GetWalletBalance(ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, int64(400), buyerBalance)

	pooled, err := treasuryRepo.GetPooledBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), pooled)
}

func TestPostgresMarketRepository_Buy_OverpaymentRetained(t *testing.T) {
	pool := setupMarketTestPool(t)
	testhelpers.ResetTreasury(t, pool)

	repo := NewPostgresMarketRepository(pool)
	treasuryRepo := treasury.NewPostgresTreasuryRepository(pool)
	ctx := context.Background()

	seller := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, buyer, 500)

	_, err := repo.ListNFT(ctx, id, seller, 100)
	require.NoError(t, err)

	sale, err := repo.Buy(ctx, id, buyer, 150)
	require.NoError(t, err)
	require.Equal(t, int64(150), sale.Payment)

	// The whole payment is pooled, not just the price
	pooled, err := treasuryRepo.GetPooledBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(150), pooled)

	buyerBalance, err := treasuryRepo.GetWalletBalance(ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, int64(350), buyerBalance)
}

func TestPostgresMarketRepository_Buy_Underpayment_NoStateChange(t *testing.T) {
	pool := setupMarketTestPool(t)
	testhelpers.ResetTreasury(t, pool)

	repo := NewPostgresMarketRepository(pool)
	nftRepo := nfts.NewPostgresNFTRepository(pool)
	treasuryRepo := treasury.NewPostgresTreasuryRepository(pool)
	ctx := context.Background()

	seller := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, buyer, 500)

	_, err := repo.ListNFT(ctx, id, seller, 100)
	require.NoError(t, err)

	_, err = repo.Buy(ctx, id, buyer, 50)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	owner, err := nftRepo.OwnerOf(ctx, id)
	require.NoError(t, err)
	require.Equal(t, seller, owner)

	listing, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	require.True(t, listing.IsListed)

	buyerBalance, err := treasuryRepo.GetWalletBalance(ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, int64(500), buyerBalance)

	pooled, err := treasuryRepo.GetPooledBalance(ctx)
	require.NoError(t, err)
	require.Zero(t, pooled)
}

func TestPostgresMarketRepository_Buy_NotListed(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	seller := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, buyer, 500)

	_, err := repo.Buy(ctx, id, buyer, 100)
	require.ErrorIs(t, err, ErrNotListed)
}

func TestPostgresMarketRepository_Buy_SelfPurchase(t *testing.T) {
	pool := setupMarketTestPool(t)

	repo := NewPostgresMarketRepository(pool)
	ctx := context.Background()
	seller := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, seller, 500)

	_, err := repo.ListNFT(ctx, id, seller, 100)
	require.NoError(t, err)

	_, err = repo.Buy(ctx, id, seller, 100)
	require.ErrorIs(t, err, ErrSelfPurchase)
}

func TestPostgresMarketRepository_Buy_WalletShortfall_RollsBack(t *testing.T) {
	pool := setupMarketTestPool(t)
	testhelpers.ResetTreasury(t, pool)

	repo := NewPostgresMarketRepository(pool)
	nftRepo := nfts.NewPostgresNFTRepository(pool)
	ctx := context.Background()

	seller := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	id := testhelpers.MintTestNFT(t, pool, seller)
	testhelpers.FundTestWallet(t, pool, buyer, 50)

	_, err := repo.ListNFT(ctx, id, seller, 100)
	require.NoError(t, err)

	_, err = repo.Buy(ctx, id, buyer, 100)
	require.ErrorIs(t, err, treasury.ErrInsufficientBalance)

	// Ownership transfer rolled back with the rest of the transaction
	owner, err := nftRepo.OwnerOf(ctx, id)
	require.NoError(t, err)
	require.Equal(t, seller, owner)

	listing, err := repo.GetListing(ctx, id)
	require.NoError(t, err)
	require.True(t, listing.IsListed)
}

func TestMarketRoundTrip_MintListBuyWithdraw(t *testing.T) {
	pool := setupMarketTestPool(t)
	testhelpers.ResetTreasury(t, pool)

	marketRepo := NewPostgresMarketRepository(pool)
	nftRepo := nfts.NewPostgresNFTRepository(pool)
	treasuryRepo := treasury.NewPostgresTreasuryRepository(pool)
	ctx := context.Background()

	minter := testhelpers.CreateTestAccount(t, pool)
	buyer := testhelpers.CreateTestAccount(t, pool)
	admin := testhelpers.CreateTestAccount(t, pool)
	testhelpers.FundTestWallet(t, pool, buyer, 1000)

	minted, err := nftRepo.MintNFT(ctx, minter, "ipfs://round-trip")
	require.NoError(t, err)

	owner, err := nftRepo.OwnerOf(ctx, minted.ID)
	require.NoError(t, err)
	require.Equal(t, minter, owner)

	_, err = marketRepo.ListNFT(ctx, minted.ID, minter, 300)
	require.NoError(t, err)

	listing, err := marketRepo.GetListing(ctx, minted.ID)
	require.NoError(t, err)
	require.Equal(t, int64(300), listing.Price)
	require.True(t, listing.IsListed)

	_, err = marketRepo.Buy(ctx, minted.ID, buyer, 300)
	require.NoError(t, err)

	amount, err := treasuryRepo.Withdraw(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, int64(300), amount)

	adminBalance, err := treasuryRepo.GetWalletBalance(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, int64(300), adminBalance)

	pooled, err := treasuryRepo.GetPooledBalance(ctx)
	require.NoError(t, err)
	require.Zero(t, pooled)
}
