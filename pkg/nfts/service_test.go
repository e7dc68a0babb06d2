package nfts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNFTRepository struct {
	mock.Mock
}

func (m *mockNFTRepository) MintNFT(ctx context.Context, ownerUUID, tokenURI string) (NFT, error) {
	args := m.Called(ctx, ownerUUID, tokenURI)
	return args.Get(0).(NFT), args.Error(1)
}

func (m *mockNFTRepository) GetNFTByID(ctx context.Context, id int64) (NFT, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(NFT), args.Error(1)
}

func (m *mockNFTRepository) OwnerOf(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockNFTRepository) ListNFTs(ctx context.Context, filters NFTFilters, limit, offset int) ([]NFT, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	return args.Get(0).([]NFT), args.Get(1).(int64), args.Error(2)
}

type mockMintPublisher struct {
	mock.Mock
}

func (m *mockMintPublisher) PublishNFTMinted(id int64, ownerUUID, tokenURI string) {
	m.Called(id, ownerUUID, tokenURI)
}

func TestNFTService_MintNFT_Success(t *testing.T) {
	repo := new(mockNFTRepository)
	pub := new(mockMintPublisher)
	service := NewNFTService(repo, pub)

	minted := NFT{ID: 1, OwnerUUID: "owner-uuid", TokenURI: "ipfs://meta", MintedAt: time.Now()}
	repo.On("MintNFT", mock.Anything, "owner-uuid", "ipfs://meta").Return(minted, nil)
	pub.On("PublishNFTMinted", int64(1), "owner-uuid", "ipfs://meta").Return()

	got, err := service.MintNFT(context.Background(), "owner-uuid", "ipfs://meta")

	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
	require.Equal(t, "owner-uuid", got.OwnerUUID)
	require.False(t, got.IsListed)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestNFTService_MintNFT_NilPublisher(t *testing.T) {
	repo := new(mockNFTRepository)
	service := NewNFTService(repo, nil)

	repo.On("MintNFT", mock.Anything, "owner-uuid", "ipfs://meta").Return(NFT{ID: 2, OwnerUUID: "owner-uuid"}, nil)

	got, err := service.MintNFT(context.Background(), "owner-uuid", "ipfs://meta")

	require.NoError(t, err)
	require.Equal(t, int64(2), got.ID)
	repo.AssertExpectations(t)
}

func TestNFTService_OwnerOf_NotFound(t *testing.T) {
	repo := new(mockNFTRepository)
	service := NewNFTService(repo, nil)

	repo.On("OwnerOf", mock.Anything, int64(99)).Return("", ErrNFTNotFound)

	_, err := service.OwnerOf(context.Background(), 99)

	require.ErrorIs(t, err, ErrNFTNotFound)
	repo.AssertExpectations(t)
}

func TestNFTService_ListNFTs_DefaultsPagination(t *testing.T) {
	repo := new(mockNFTRepository)
	service := NewNFTService(repo, nil)

	repo.On("ListNFTs", mock.Anything, NFTFilters{}, 10, 0).Return([]NFT{}, int64(0), nil)

	_, _, err := service.ListNFTs(context.Background(), NFTFilters{}, 0, 0)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
