package market

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/nfts"
	"github.com/Bukola-tech/NFTMarketHub/pkg/response"
	"github.com/Bukola-tech/NFTMarketHub/pkg/treasury"
)

type MarketHandler struct {
	service MarketService
}

func NewMarketHandler(service MarketService) *MarketHandler {
	return &MarketHandler{service: service}
}

func (h *MarketHandler) RegisterRoutes(router *gin.Engine) {
	router.PATCH("/nfts/:id/list", h.listNFT)
	router.PATCH("/nfts/:id/delist", h.delistNFT)
	router.POST("/nfts/:id/buy", h.buyNFT)
	router.GET("/nfts/:id/listing", h.getListing)
}

type listNFTRequest struct {
	Price int64 `json:"price" binding:"required"`
}

type buyNFTRequest struct {
	Payment int64 `json:"payment" binding:"required"`
}

// @Summary      List an NFT for sale
// @Description  Owner-only. Puts the NFT up for sale at a positive price; re-listing overwrites the price.
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        X-Caller-ID header string true "Caller UUID"
// @Param        id       path  int             true  "NFT ID"
// @Param        request  body  listNFTRequest  true  "Listing request"
// @Success      200  {object}  response.APIResponse{data=Listing} "NFT listed successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request or price"
// @Failure      403  {object}  response.APIResponse "Caller is not the owner"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id}/list [patch]
func (h *MarketHandler) listNFT(c *gin.Context) {
	caller, err := access.CallerID(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "missing or invalid caller id", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	var req listNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	listing, err := h.service.ListNFT(c.Request.Context(), caller, id, req.Price)
	if err != nil {
		h.sendMarketError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "nft listed for sale", listing)
}

// @Summary      Delist an NFT
// @Description  Owner-only. Takes the NFT off sale; delisting an unlisted NFT is a no-op.
// @Tags         market
// @Produce      json
// @Param        X-Caller-ID header string true "Caller UUID"
// @Param        id   path  int  true  "NFT ID"
// @Success      200  {object}  response.APIResponse{data=Listing} "NFT delisted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid NFT ID or caller id"
// @Failure      403  {object}  response.APIResponse "Caller is not the owner"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id}/delist [patch]
func (h *MarketHandler) delistNFT(c *gin.Context) {
	caller, err := access.CallerID(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "missing or invalid caller id", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	listing, err := h.service.DelistNFT(c.Request.Context(), caller, id)
	if err != nil {
		h.sendMarketError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "nft delisted", listing)
}

// @Summary      Buy an NFT
// @Description  Purchases a listed NFT. The full payment is debited from the buyer wallet and held in the pooled balance; overpayment is not refunded.
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        X-Caller-ID header string true "Caller UUID"
// @Param        id       path  int            true  "NFT ID"
// @Param        request  body  buyNFTRequest  true  "Purchase request"
// @Success      200  {object}  response.APIResponse{data=Sale} "NFT purchased successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      402  {object}  response.APIResponse "Payment below price or wallet cannot cover payment"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      409  {object}  response.APIResponse "NFT not listed or self purchase"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id}/buy [post]
func (h *MarketHandler) buyNFT(c *gin.Context) {
	caller, err := access.CallerID(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "missing or invalid caller id", nil)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	var req buyNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	sale, err := h.service.Buy(c.Request.Context(), caller, id, req.Payment)
	if err != nil {
		h.sendMarketError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "nft purchased", sale)
}

// @Summary      Get listing state
// @Description  Returns the sale state (price, listed flag) for an NFT
// @Tags         market
// @Produce      json
// @Param        id   path  int  true  "NFT ID"
// @Success      200  {object}  response.APIResponse{data=Listing} "Listing retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid NFT ID"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id}/listing [get]
func (h *MarketHandler) getListing(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	listing, err := h.service.GetListing(c.Request.Context(), id)
	if err != nil {
		h.sendMarketError(c, err)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "listing fetched", listing)
}

func (h *MarketHandler) sendMarketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nfts.ErrNFTNotFound):
		response.SendAPIResponse(c, http.StatusNotFound, false, "nft not found", nil)
	case errors.Is(err, access.ErrNotOwner):
		response.SendAPIResponse(c, http.StatusForbidden, false, "caller is not the owner", nil)
	case errors.Is(err, ErrInvalidPrice):
		response.SendAPIResponse(c, http.StatusBadRequest, false, "price must be positive", nil)
	case errors.Is(err, ErrNotListed):
		response.SendAPIResponse(c, http.StatusConflict, false, "nft is not listed for sale", nil)
	case errors.Is(err, ErrSelfPurchase):
		response.SendAPIResponse(c, http.StatusConflict, false, "cannot buy your own nft", nil)
	case errors.Is(err, ErrInsufficientFunds):
		response.SendAPIResponse(c, http.StatusPaymentRequired, false, "payment is below the listed price", nil)
	case errors.Is(err, treasury.ErrInsufficientBalance):
		response.SendAPIResponse(c, http.StatusPaymentRequired, false, "wallet balance cannot cover the payment", nil)
	case errors.Is(err, treasury.ErrWalletNotFound):
		response.SendAPIResponse(c, http.StatusPaymentRequired, false, "no funded wallet for caller", nil)
	default:
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
	}
}
