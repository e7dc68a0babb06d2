package market

import (
	"context"
	"fmt"
	"log"

	"github.com/Bukola-tech/NFTMarketHub/pkg/accounts"
	"github.com/Bukola-tech/NFTMarketHub/pkg/notify"
)

type MarketService interface {
	ListNFT(ctx context.Context, callerUUID string, nftID, price int64) (Listing, error)
	DelistNFT(ctx context.Context, callerUUID string, nftID int64) (Listing, error)
	Buy(ctx context.Context, buyerUUID string, nftID, payment int64) (Sale, error)
	GetListing(ctx context.Context, nftID int64) (Listing, error)
}

// Publisher pushes market events to connected feed subscribers.
type Publisher interface {
	PublishNFTListed(id int64, ownerUUID string, price int64)
	PublishNFTDelisted(id int64, ownerUUID string)
	PublishNFTSold(id int64, sellerUUID, buyerUUID string, price, payment int64)
}

type marketService struct {
	repo      MarketRepository
	accounts  accounts.AccountRepository
	email     notify.EmailService
	publisher Publisher
}

func NewMarketService(repo MarketRepository, accountsRepo accounts.AccountRepository, email notify.EmailService, publisher Publisher) MarketService {
	return &marketService{
		repo:      repo,
		accounts:  accountsRepo,
		email:     email,
		publisher: publisher,
	}
}

func (s *marketService) ListNFT(ctx context.Context, callerUUID string, nftID, price int64) (Listing, error) {
	if price <= 0 {
		return Listing{}, ErrInvalidPrice
	}

	listing, err := s.repo.ListNFT(ctx, nftID, callerUUID, price)
	if err != nil {
		return Listing{}, err
	}

	if s.publisher != nil {
		s.publisher.PublishNFTListed(nftID, callerUUID, price)
	}

	return listing, nil
}

func (s *marketService) DelistNFT(ctx context.Context, callerUUID string, nftID int64) (Listing, error) {
	listing, err := s.repo.DelistNFT(ctx, nftID, callerUUID)
	if err != nil {
		return Listing{}, err
	}

	if s.publisher != nil {
		s.publisher.PublishNFTDelisted(nftID, callerUUID)
	}

	return listing, nil
}

func (s *marketService) Buy(ctx context.Context, buyerUUID string, nftID, payment int64) (Sale, error) {
	sale, err := s.repo.Buy(ctx, nftID, buyerUUID, payment)
	if err != nil {
		return Sale{}, err
	}

	// Side effects only after the purchase is committed.
	if s.publisher != nil {
		s.publisher.PublishNFTSold(sale.NFTID, sale.SellerUUID, sale.BuyerUUID, sale.Price, sale.Payment)
	}

	s.sendSaleReceipt(ctx, sale)

	return sale, nil
}

func (s *marketService) GetListing(ctx context.Context, nftID int64) (Listing, error) {
	return s.repo.GetListing(ctx, nftID)
}

// sendSaleReceipt emails the seller if a registered account with an email
// address exists for the seller identity. Unregistered sellers get nothing.
func (s *marketService) sendSaleReceipt(ctx context.Context, sale Sale) {
	if s.email == nil || s.accounts == nil {
		return
	}

	seller, err := s.accounts.GetAccountByUUID(ctx, sale.SellerUUID)
	if err != nil || seller.Email == "" {
		return
	}

	subject := "Your NFT sold on NFTMarketHub"
	body := fmt.Sprintf("NFT #%d sold for %d. Proceeds are held in the marketplace pool until the admin withdrawal.", sale.NFTID, sale.Payment)
	if err := s.email.SendEmail(subject, seller.Email, body, ""); err != nil {
		log.Printf("sale receipt email failed for nft %d: %v", sale.NFTID, err)
	}
}
