package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/nfts"
	"github.com/Bukola-tech/NFTMarketHub/pkg/response"
	"github.com/Bukola-tech/NFTMarketHub/pkg/treasury"
)

const testCallerUUID = "1c8f1f0e-2c3d-4d5e-8f90-123456789abc"

type mockMarketService struct {
	mock.Mock
}

func (m *mockMarketService) ListNFT(ctx context.Context, callerUUID string, nftID, price int64) (Listing, error) {
	args := m.Called(ctx, callerUUID, nftID, price)
	return args.Get(0).(Listing), args.Error(1)
}

func (m *mockMarketService) DelistNFT(ctx context.Context, callerUUID string, nftID int64) (Listing, error) {
	args := m.Called(ctx, callerUUID, nftID)
	return args.Get(0).(Listing), args.Error(1)
}

func (m *mockMarketService) Buy(ctx context.Context, buyerUUID string, nftID, payment int64) (Sale, error) {
	args := m.Called(ctx, buyerUUID, nftID, payment)
	return args.Get(0).(Sale), args.Error(1)
}

func (m *mockMarketService) GetListing(ctx context.Context, nftID int64) (Listing, error) {
	args := m.Called(ctx, nftID)
	return args.Get(0).(Listing), args.Error(1)
}

func setupMarketRouter(service MarketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMarketHandler(service)
	h.RegisterRoutes(r)
	return r
}

func TestMarketHandler_ListNFT_Success(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("ListNFT", mock.Anything, testCallerUUID, int64(1), int64(100)).Return(Listing{NFTID: 1, Price: 100, IsListed: true}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/nfts/1/list", strings.NewReader(`{"price":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "nft listed for sale", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_ListNFT_NotOwner(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("ListNFT", mock.Anything, testCallerUUID, int64(1), int64(100)).Return(Listing{}, access.ErrNotOwner)

	req := httptest.NewRequest(http.MethodPatch, "/nfts/1/list", strings.NewReader(`{"price":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Equal(t, "caller is not the owner", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_ListNFT_InvalidPrice(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("ListNFT", mock.Anything, testCallerUUID, int64(1), int64(-1)).Return(Listing{}, ErrInvalidPrice)

	req := httptest.NewRequest(http.MethodPatch, "/nfts/1/list", strings.NewReader(`{"price":-1}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestMarketHandler_ListNFT_MissingCaller(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/nfts/1/list", strings.NewReader(`{"price":100}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListNFT", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMarketHandler_DelistNFT_Success(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("DelistNFT", mock.Anything, testCallerUUID, int64(2)).Return(Listing{NFTID: 2, IsListed: false}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/nfts/2/delist", nil)
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "nft delisted", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_BuyNFT_NotListed(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("Buy", mock.Anything, testCallerUUID, int64(3), int64(100)).Return(Sale{}, ErrNotListed)

	req := httptest.NewRequest(http.MethodPost, "/nfts/3/buy", strings.NewReader(`{"payment":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "nft is not listed for sale", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_BuyNFT_InsufficientFunds(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("Buy", mock.Anything, testCallerUUID, int64(3), int64(50)).Return(Sale{}, ErrInsufficientFunds)

	req := httptest.NewRequest(http.MethodPost, "/nfts/3/buy", strings.NewReader(`{"payment":50}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "payment is below the listed price", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_BuyNFT_SelfPurchase(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("Buy", mock.Anything, testCallerUUID, int64(3), int64(100)).Return(Sale{}, ErrSelfPurchase)

	req := httptest.NewRequest(http.MethodPost, "/nfts/3/buy", strings.NewReader(`{"payment":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	svc.AssertExpectations(t)
}

func TestMarketHandler_BuyNFT_WalletShortfall(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("Buy", mock.Anything, testCallerUUID, int64(3), int64(100)).Return(Sale{}, treasury.ErrInsufficientBalance)

	req := httptest.NewRequest(http.MethodPost, "/nfts/3/buy", strings.NewReader(`{"payment":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusPaymentRequired, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "wallet balance cannot cover the payment", resp.Message)

	svc.AssertExpectations(t)
}

func TestMarketHandler_BuyNFT_UnknownAsset(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("Buy", mock.Anything, testCallerUUID, int64(9), int64(100)).Return(Sale{}, nfts.ErrNFTNotFound)

	req := httptest.NewRequest(http.MethodPost, "/nfts/9/buy", strings.NewReader(`{"payment":100}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(access.CallerHeader, testCallerUUID)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestMarketHandler_GetListing_Success(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	svc.On("GetListing", mock.Anything, int64(7)).Return(Listing{NFTID: 7, Price: 250, IsListed: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/nfts/7/listing", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(250), data["price"])
	require.Equal(t, true, data["is_listed"])

	svc.AssertExpectations(t)
}

func TestMarketHandler_GetListing_InvalidID(t *testing.T) {
	svc := new(mockMarketService)
	r := setupMarketRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/nfts/abc/listing", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetListing", mock.Anything, mock.Anything)
}
