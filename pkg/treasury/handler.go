package treasury

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/response"
)

type TreasuryHandler struct {
	service TreasuryService
}

func NewTreasuryHandler(service TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{service: service}
}

func (h *TreasuryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/treasury/balance", h.getPooledBalance)
	router.POST("/treasury/withdraw", h.withdraw)
	router.GET("/wallets/:uuid", h.getWallet)
	router.POST("/wallets/:uuid/deposit", h.deposit)
}

type depositRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type balanceResponse struct {
	Balance int64 `json:"balance"`
}

type withdrawResponse struct {
	Amount int64 `json:"amount"`
}

// @Summary      Get pooled balance
// @Description  Returns the custodial balance accumulated from sales
// @Tags         treasury
// @Produce      json
// @Success      200  {object}  response.APIResponse{data=balanceResponse} "Balance retrieved successfully"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /treasury/balance [get]
func (h *TreasuryHandler) getPooledBalance(c *gin.Context) {
	balance, err := h.service.GetPooledBalance(c.Request.Context())
	if err != nil {
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "pooled balance fetched", balanceResponse{Balance: balance})
}

// @Summary      Withdraw pooled funds
// @Description  Admin-only. Transfers the entire pooled balance to the admin wallet.
// @Tags         treasury
// @Produce      json
// @Param        X-Caller-ID header string true "Caller UUID"
// @Success      200  {object}  response.APIResponse{data=withdrawResponse} "Funds withdrawn successfully"
// @Failure      400  {object}  response.APIResponse "Missing or invalid caller id"
// @Failure      403  {object}  response.APIResponse "Caller is not the registry admin"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /treasury/withdraw [post]
func (h *TreasuryHandler) withdraw(c *gin.Context) {
	caller, err := access.CallerID(c)
	if err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "missing or invalid caller id", nil)
		return
	}

	amount, err := h.service.Withdraw(c.Request.Context(), caller)
	if err != nil {
		if errors.Is(err, access.ErrAdminRequired) {
			response.SendAPIResponse(c, http.StatusForbidden, false, "admin required", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "funds withdrawn", withdrawResponse{Amount: amount})
}

// @Summary      Get wallet balance
// @Description  Returns the native value balance held for an account
// @Tags         treasury
// @Produce      json
// @Param        uuid  path  string  true  "Account UUID"
// @Success      200  {object}  response.APIResponse{data=balanceResponse} "Wallet retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid account UUID"
// @Failure      404  {object}  response.APIResponse "Wallet not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /wallets/{uuid} [get]
func (h *TreasuryHandler) getWallet(c *gin.Context) {
	accountUUID := c.Param("uuid")
	if _, err := uuid.Parse(accountUUID); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid account uuid", nil)
		return
	}

	balance, err := h.service.GetWalletBalance(c.Request.Context(), accountUUID)
	if err != nil {
		if errors.Is(err, ErrWalletNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "wallet not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "wallet fetched", balanceResponse{Balance: balance})
}

// @Summary      Deposit into a wallet
// @Description  Credits native value to an account wallet, creating it if absent
// @Tags         treasury
// @Accept       json
// @Produce      json
// @Param        uuid     path  string          true  "Account UUID"
// @Param        request  body  depositRequest  true  "Deposit request"
// @Success      200  {object}  response.APIResponse{data=balanceResponse} "Deposit applied successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /wallets/{uuid}/deposit [post]
func (h *TreasuryHandler) deposit(c *gin.Context) {
	accountUUID := c.Param("uuid")
	if _, err := uuid.Parse(accountUUID); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid account uuid", nil)
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	balance, err := h.service.Deposit(c.Request.Context(), accountUUID, req.Amount)
	if err != nil {
		if errors.Is(err, ErrInvalidAmount) {
			response.SendAPIResponse(c, http.StatusBadRequest, false, "amount must be positive", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "deposit applied", balanceResponse{Balance: balance})
}
