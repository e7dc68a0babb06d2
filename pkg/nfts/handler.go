package nfts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/response"
)

type NFTHandler struct {
	service NFTService
}

func NewNFTHandler(service NFTService) *NFTHandler {
	return &NFTHandler{service: service}
}

func (h *NFTHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/nfts", h.mintNFT)
	router.GET("/nfts", h.listNFTs)
	router.GET("/nfts/:id", h.getNFTByID)
	router.GET("/nfts/:id/owner", h.ownerOf)
}

type mintNFTRequest struct {
	TokenURI string `json:"token_uri" binding:"required"`
}

type ownerResponse struct {
	OwnerUUID string `json:"owner_uuid"`
}

// @Summary      Mint a new NFT
// @Description  Mints a new NFT with the next sequential id, owned by the caller
// @Tags         nfts
// @Accept       json
// @Produce      json
// @Param        X-Caller-ID header string true "Caller UUID"
// @Param        request body mintNFTRequest true "Mint request"
// @Success      201  {object}  response.APIResponse{data=NFT} "NFT minted successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload or caller id"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts [post]
func (h *NFTHandler) mintNFT(c *gin.Context) {
	caller, err := access.CallerID(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "missing or invalid caller id", nil)
		return
	}

	var req mintNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	minted, err := h.service.MintNFT(c.Request.Context(), caller, req.TokenURI)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "nft minted", minted)
}

// @Summary      Get NFT by ID
// @Description  Retrieves a single NFT, including its current price and listed flag
// @Tags         nfts
// @Produce      json
// @Param        id   path      int  true  "NFT ID"
// @Success      200  {object}  response.APIResponse{data=NFT} "NFT retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid NFT ID"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id} [get]
func (h *NFTHandler) getNFTByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	n, err := h.service.GetNFTByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNFTNotFound {
			response.SendAPIResponse(c, http.StatusNotFound, false, "nft not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "nft fetched", n)
}

// @Summary      Get NFT owner
// @Description  Returns the current owner identity of an NFT
// @Tags         nfts
// @Produce      json
// @Param        id   path      int  true  "NFT ID"
// @Success      200  {object}  response.APIResponse{data=ownerResponse} "Owner retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid NFT ID"
// @Failure      404  {object}  response.APIResponse "NFT not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts/{id}/owner [get]
func (h *NFTHandler) ownerOf(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid nft id", nil)
		return
	}

	owner, err := h.service.OwnerOf(c.Request.Context(), id)
	if err != nil {
		if err == ErrNFTNotFound {
			response.SendAPIResponse(c, http.StatusNotFound, false, "nft not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "owner fetched", ownerResponse{OwnerUUID: owner})
}

// @Summary      List NFTs
// @Description  Retrieves a paginated list of NFTs with optional owner and listed filters
// @Tags         nfts
// @Produce      json
// @Param        page       query     int     false  "Page number" default(1)
// @Param        limit      query     int     false  "Items per page" default(10)
// @Param        owner      query     string  false  "Filter by owner UUID"
// @Param        is_listed  query     bool    false  "Filter by listed status"
// @Success      200  {object}  response.APIResponse{data=NFTList} "NFTs retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /nfts [get]
func (h *NFTHandler) listNFTs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	filters := NFTFilters{}

	if owner := c.Query("owner"); owner != "" {
		filters.OwnerUUID = &owner
	}

	if isListedStr := c.Query("is_listed"); isListedStr != "" {
		isListed, err := strconv.ParseBool(isListedStr)
		if err == nil {
			filters.IsListed = &isListed
		}
	}

	nftList, total, err := h.service.ListNFTs(c.Request.Context(), filters, page, limit)
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	data := NFTList{Items: nftList, Total: total, Page: page, Limit: limit}
	response.SendAPIResponse(c, http.StatusOK, true, "nfts listed", data)
}
