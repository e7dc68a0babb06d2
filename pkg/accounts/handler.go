package accounts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bukola-tech/NFTMarketHub/pkg/response"
)

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/accounts", h.register)
	router.POST("/accounts/login", h.login)
	router.GET("/accounts/:uuid", h.getAccountByUUID)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register an account
// @Description  Creates a marketplace account and assigns it a caller UUID
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration request"
// @Success      201  {object}  response.APIResponse{data=Account} "Account created successfully"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      409  {object}  response.APIResponse "Email already taken"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /accounts [post]
func (h *AccountHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	a, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.SendAPIResponse(c, http.StatusConflict, false, "account exists with that email", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusCreated, true, "account created", a)
}

// @Summary      Log in
// @Description  Verifies credentials and returns the account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login request"
// @Success      200  {object}  response.APIResponse{data=Account} "Login successful"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      401  {object}  response.APIResponse "Invalid credentials"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /accounts/login [post]
func (h *AccountHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	a, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.SendAPIResponse(c, http.StatusUnauthorized, false, "invalid credentials", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "login successful", a)
}

// @Summary      Get account by UUID
// @Description  Retrieves a single account by its caller UUID
// @Tags         accounts
// @Produce      json
// @Param        uuid  path  string  true  "Account UUID"
// @Success      200  {object}  response.APIResponse{data=Account} "Account retrieved successfully"
// @Failure      400  {object}  response.APIResponse "Invalid account UUID"
// @Failure      404  {object}  response.APIResponse "Account not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /accounts/{uuid} [get]
func (h *AccountHandler) getAccountByUUID(c *gin.Context) {
	accountUUID := c.Param("uuid")
	if _, err := uuid.Parse(accountUUID); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid account uuid", nil)
		return
	}

	a, err := h.service.GetAccountByUUID(c.Request.Context(), accountUUID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			response.SendAPIResponse(c, http.StatusNotFound, false, "account not found", nil)
			return
		}
		response.SendAPIResponse(c, http.StatusInternalServerError, false, err.Error(), nil)
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "account fetched", a)
}
