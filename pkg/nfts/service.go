package nfts

import "context"

type NFTService interface {
	MintNFT(ctx context.Context, ownerUUID, tokenURI string) (NFT, error)
	GetNFTByID(ctx context.Context, id int64) (NFT, error)
	OwnerOf(ctx context.Context, id int64) (string, error)
	ListNFTs(ctx context.Context, filters NFTFilters, page, limit int) ([]NFT, int64, error)
}

type nftService struct {
	repo      NFTRepository
	publisher Publisher
}

// Publisher pushes registry events to connected feed subscribers.
type Publisher interface {
	PublishNFTMinted(id int64, ownerUUID, tokenURI string)
}

func NewNFTService(repo NFTRepository, publisher Publisher) NFTService {
	return &nftService{repo: repo, publisher: publisher}
}

func (s *nftService) MintNFT(ctx context.Context, ownerUUID, tokenURI string) (NFT, error) {
	minted, err := s.repo.MintNFT(ctx, ownerUUID, tokenURI)
	if err != nil {
		return NFT{}, err
	}

	if s.publisher != nil {
		s.publisher.PublishNFTMinted(minted.ID, minted.OwnerUUID, minted.TokenURI)
	}

	return minted, nil
}

func (s *nftService) GetNFTByID(ctx context.Context, id int64) (NFT, error) {
	return s.repo.GetNFTByID(ctx, id)
}

func (s *nftService) OwnerOf(ctx context.Context, id int64) (string, error) {
	return s.repo.OwnerOf(ctx, id)
}

func (s *nftService) ListNFTs(ctx context.Context, filters NFTFilters, page, limit int) ([]NFT, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.ListNFTs(ctx, filters, limit, offset)
}
