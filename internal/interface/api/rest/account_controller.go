package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-accounts-api/internal/application/ports"
	"hotel-accounts-api/internal/application/services"
	domain "hotel-accounts-api/internal/domain/account"
	accountDB "hotel-accounts-api/internal/infrastructure/db/postgres/account"
	"hotel-accounts-api/internal/interface/api/rest/dto/account"
	"hotel-accounts-api/internal/interface/api/rest/validator"
)

type AccountController struct {
	accountService ports.AccountService
	logger         *zap.Logger
}

func NewAccountController(
	r *gin.Engine,
	accountService ports.AccountService,
	logger *zap.Logger,
) *AccountController {
	ac := &AccountController{
		accountService: accountService,
		logger:         logger,
	}

	r.GET(RouteAccounts, ac.GetAccountsHandler)
	r.GET(RouteAccountsDeleted, ac.GetDeletedAccountsHandler)
	r.GET(RouteAccount, ac.GetAccountHandler)
	r.POST(RouteAccounts, ac.CreateAccountHandler)
	r.PUT(RouteAccount, ac.UpdateAccountHandler)
	r.DELETE(RouteAccount, ac.DeleteAccountHandler)
	r.POST(RouteAccountRestore, ac.RestoreAccountHandler)

	return ac
}

// writeServiceError maps service failures onto HTTP statuses: conflicts to
// 409, invalid state/arguments to 400, anything else to 500.
func (ac *AccountController) writeServiceError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, accountDB.ErrEmailAlreadyExists),
		errors.Is(err, accountDB.ErrCPFAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidPagination),
		errors.Is(err, services.ErrAccountNotDeleted):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to " + op},
		)
		ac.logger.Error(op+" error", zap.Error(err))
	}
}

func (ac *AccountController) GetAccountsHandler(c *gin.Context) {
	page, limit, err := validator.ValidatePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	accounts, total, err := ac.accountService.FindAccounts(c.Request.Context(), page, limit, c.Query("search"))
	if err != nil {
		ac.writeServiceError(c, "get accounts", err)
		return
	}

	c.JSON(http.StatusOK, account.ToResponsePage(accounts, total, page, limit))
}

func (ac *AccountController) GetDeletedAccountsHandler(c *gin.Context) {
	page, limit, err := validator.ValidatePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": err.Error()},
		)
		return
	}

	accounts, total, err := ac.accountService.FindDeletedAccounts(c.Request.Context(), page, limit)
	if err != nil {
		ac.writeServiceError(c, "get deleted accounts", err)
		return
	}

	c.JSON(http.StatusOK, account.ToResponsePage(accounts, total, page, limit))
}

func (ac *AccountController) GetAccountHandler(c *gin.Context) {
	ok, id := validator.IsAccountID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a positive integer"},
		)
		return
	}

	a, err := ac.accountService.FindAccountByID(c.Request.Context(), id)
	if err != nil {
		ac.writeServiceError(c, "get an account", err)
		return
	}

	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) CreateAccountHandler(c *gin.Context) {
	var req account.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	aDomain, password := account.ToDomainAccount(req)

	a, err := ac.accountService.CreateAccount(c.Request.Context(), aDomain, password)
	if err != nil {
		ac.writeServiceError(c, "create an account", err)
		return
	}

	c.JSON(http.StatusCreated, account.ToResponseAccount(*a))
}

func (ac *AccountController) UpdateAccountHandler(c *gin.Context) {
	ok, id := validator.IsAccountID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a positive integer"},
		)
		return
	}

	var req account.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateAccount(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	a, err := ac.accountService.UpdateAccount(c.Request.Context(), id, account.ToPatch(req))
	if err != nil {
		ac.writeServiceError(c, "update an account", err)
		return
	}

	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}

func (ac *AccountController) DeleteAccountHandler(c *gin.Context) {
	ok, id := validator.IsAccountID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a positive integer"},
		)
		return
	}

	// the body is optional; it only carries who performed the deletion
	var req account.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	a, err := ac.accountService.DeleteAccount(c.Request.Context(), id, (*domain.ID)(req.DeletedBy))
	if err != nil {
		ac.writeServiceError(c, "delete an account", err)
		return
	}

	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AccountController) RestoreAccountHandler(c *gin.Context) {
	ok, id := validator.IsAccountID(c.Param("account_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "account_id must be a positive integer"},
		)
		return
	}

	a, err := ac.accountService.RestoreAccount(c.Request.Context(), id)
	if err != nil {
		ac.writeServiceError(c, "restore an account", err)
		return
	}

	if a == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "account not found"},
		)
		return
	}

	c.JSON(http.StatusOK, account.ToResponseAccount(*a))
}
