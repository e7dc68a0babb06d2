package nfts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNFTNotFound = errors.New("nft not found")

type NFTRepository interface {
	MintNFT(ctx context.Context, ownerUUID, tokenURI string) (NFT, error)
	GetNFTByID(ctx context.Context, id int64) (NFT, error)
	OwnerOf(ctx context.Context, id int64) (string, error)
	ListNFTs(ctx context.Context, filters NFTFilters, limit, offset int) ([]NFT, int64, error)
}

type NFTFilters struct {
	OwnerUUID *string
	IsListed  *bool
}

type postgresNFTRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresNFTRepository(pool *pgxpool.Pool) NFTRepository {
	return &postgresNFTRepository{pool: pool}
}

func (r *postgresNFTRepository) MintNFT(ctx context.Context, ownerUUID, tokenURI string) (NFT, error) {
	query := `INSERT INTO nfts (owner_uuid, token_uri, price, is_listed, minted_at)
              VALUES ($1, $2, 0, false, NOW())
              RETURNING id, owner_uuid, token_uri, price, is_listed, minted_at`

	row := r.pool.QueryRow(ctx, query, ownerUUID, tokenURI)

	var minted NFT
	if err := row.Scan(&minted.ID, &minted.OwnerUUID, &minted.TokenURI, &minted.Price, &minted.IsListed, &minted.MintedAt); err != nil {
		return NFT{}, err
	}

	return minted, nil
}

func (r *postgresNFTRepository) GetNFTByID(ctx context.Context, id int64) (NFT, error) {
	query := `SELECT id, owner_uuid, token_uri, price, is_listed, minted_at
              FROM nfts
              WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var n NFT
	if err := row.Scan(&n.ID, &n.OwnerUUID, &n.TokenURI, &n.Price, &n.IsListed, &n.MintedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NFT{}, ErrNFTNotFound
		}
		return NFT{}, err
	}

	return n, nil
}

func (r *postgresNFTRepository) OwnerOf(ctx context.Context, id int64) (string, error) {
	row := r.pool.QueryRow(ctx, "SELECT owner_uuid FROM nfts WHERE id = $1", id)

	var owner string
	if err := row.Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNFTNotFound
		}
		return "", err
	}

	return owner, nil
}

func (r *postgresNFTRepository) ListNFTs(ctx context.Context, filters NFTFilters, limit, offset int) ([]NFT, int64, error) {
	whereClauses := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.OwnerUUID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("owner_uuid = $%d", argPos))
		args = append(args, *filters.OwnerUUID)
		argPos++
	}

	if filters.IsListed != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("is_listed = $%d", argPos))
		args = append(args, *filters.IsListed)
		argPos++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`SELECT id, owner_uuid, token_uri, price, is_listed, minted_at
              FROM nfts
              %s
              ORDER BY id
              LIMIT $%d OFFSET $%d`, whereSQL, argPos, argPos+1)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	nftList := make([]NFT, 0)
	for rows.Next() {
		var n NFT
		if err := rows.Scan(&n.ID, &n.OwnerUUID, &n.TokenURI, &n.Price, &n.IsListed, &n.MintedAt); err != nil {
			return nil, 0, err
		}
		nftList = append(nftList, n)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM nfts %s", whereSQL)
	countArgs := args[:len(args)-2]

	var total int64
	countRow := r.pool.QueryRow(ctx, countQuery, countArgs...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	return nftList, total, nil
}

// TransferOwnership reassigns an NFT within the caller-supplied transaction.
// It is invoked only from the market buy path and requires from to still be
// the current owner when the row is updated.
func TransferOwnership(ctx context.Context, tx pgx.Tx, id int64, from, to string) error {
	cmd, err := tx.Exec(ctx, "UPDATE nfts SET owner_uuid = $1 WHERE id = $2 AND owner_uuid = $3", to, id, from)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNFTNotFound
	}
	return nil
}
