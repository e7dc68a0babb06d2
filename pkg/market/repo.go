package market

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/nfts"
	"github.com/Bukola-tech/NFTMarketHub/pkg/treasury"
)

var (
	ErrNotListed         = errors.New("nft is not listed for sale")
	ErrInvalidPrice      = errors.New("price must be positive")
	ErrInsufficientFunds = errors.New("payment is below the listed price")
	ErrSelfPurchase      = errors.New("cannot buy your own nft")
)

type MarketRepository interface {
	ListNFT(ctx context.Context, nftID int64, callerUUID string, price int64) (Listing, error)
	DelistNFT(ctx context.Context, nftID int64, callerUUID string) (Listing, error)
	Buy(ctx context.Context, nftID int64, buyerUUID string, payment int64) (Sale, error)
	GetListing(ctx context.Context, nftID int64) (Listing, error)
}

type postgresMarketRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMarketRepository(pool *pgxpool.Pool) MarketRepository {
	return &postgresMarketRepository{pool: pool}
}

// ListNFT puts an NFT up for sale. Re-listing overwrites the price. The
// ownership check happens on the locked row so a concurrent sale cannot
// slip between check and update.
func (r *postgresMarketRepository) ListNFT(ctx context.Context, nftID int64, callerUUID string, price int64) (Listing, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Listing{}, err
	}
	defer tx.Rollback(ctx)

	var owner string
	if err := tx.QueryRow(ctx, "SELECT owner_uuid FROM nfts WHERE id = $1 FOR UPDATE", nftID).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, nfts.ErrNFTNotFound
		}
		return Listing{}, err
	}

	if err := access.CheckOwner(callerUUID, owner).Err(); err != nil {
		return Listing{}, err
	}

	if _, err := tx.Exec(ctx, "UPDATE nfts SET price = $1, is_listed = true WHERE id = $2", price, nftID); err != nil {
		return Listing{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Listing{}, err
	}

	return Listing{NFTID: nftID, Price: price, IsListed: true}, nil
}

// DelistNFT takes an NFT off sale. Delisting an already-unlisted NFT is a
// no-op that still succeeds.
func (r *postgresMarketRepository) DelistNFT(ctx context.Context, nftID int64, callerUUID string) (Listing, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Listing{}, err
	}
	defer tx.Rollback(ctx)

	var owner string
	var price int64
	if err := tx.QueryRow(ctx, "SELECT owner_uuid, price FROM nfts WHERE id = $1 FOR UPDATE", nftID).Scan(&owner, &price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, nfts.ErrNFTNotFound
		}
		return Listing{}, err
	}

	if err := access.CheckOwner(callerUUID, owner).Err(); err != nil {
		return Listing{}, err
	}

	if _, err := tx.Exec(ctx, "UPDATE nfts SET is_listed = false WHERE id = $1", nftID); err != nil {
		return Listing{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Listing{}, err
	}

	return Listing{NFTID: nftID, Price: price, IsListed: false}, nil
}

// Buy performs the whole purchase in one transaction: validate the locked
// listing, transfer ownership and clear the listing, then move the full
// payment from the buyer wallet into the pooled balance. Any failure rolls
// everything back. Ownership mutation runs before the value movement.
func (r *postgresMarketRepository) Buy(ctx context.Context, nftID int64, buyerUUID string, payment int64) (Sale, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Sale{}, err
	}
	defer tx.Rollback(ctx)

	var owner string
	var price int64
	var isListed bool
	row := tx.QueryRow(ctx, "SELECT owner_uuid, price, is_listed FROM nfts WHERE id = $1 FOR UPDATE", nftID)
	if err := row.Scan(&owner, &price, &isListed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Sale{}, nfts.ErrNFTNotFound
		}
		return Sale{}, err
	}

	if !isListed {
		return Sale{}, ErrNotListed
	}
	if owner == buyerUUID {
		return Sale{}, ErrSelfPurchase
	}
	if payment < price {
		return Sale{}, ErrInsufficientFunds
	}

	if err := nfts.TransferOwnership(ctx, tx, nftID, owner, buyerUUID); err != nil {
		return Sale{}, err
	}

	if _, err := tx.Exec(ctx, "UPDATE nfts SET is_listed = false WHERE id = $1", nftID); err != nil {
		return Sale{}, err
	}

	// Full payment is retained by the pool; overpayment is not refunded.
	if err := treasury.DebitWallet(ctx, tx, buyerUUID, payment); err != nil {
		return Sale{}, err
	}
	if err := treasury.CreditPool(ctx, tx, payment); err != nil {
		return Sale{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Sale{}, err
	}

	return Sale{NFTID: nftID, SellerUUID: owner, BuyerUUID: buyerUUID, Price: price, Payment: payment}, nil
}

func (r *postgresMarketRepository) GetListing(ctx context.Context, nftID int64) (Listing, error) {
	row := r.pool.QueryRow(ctx, "SELECT price, is_listed FROM nfts WHERE id = $1", nftID)

	l := Listing{NFTID: nftID}
	if err := row.Scan(&l.Price, &l.IsListed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Listing{}, nfts.ErrNFTNotFound
		}
		return Listing{}, err
	}

	return l, nil
}
