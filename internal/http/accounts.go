package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
	"github.com/wingmanapp/wingman/internal/observability"
)

// AccountStore defines database operations for account management.
type AccountStore interface {
	CreateAccount(email, fullName, phone string) (*entities.Account, error)
	GetAccount(email string) (*entities.Account, error)
	UpdateAccount(email, fullName, phone string) (*entities.Account, error)
	DeleteAccount(email string) error
	GetPaymentMethods(accountID uint) ([]entities.PaymentMethod, error)
}

type AccountsController struct {
	store AccountStore
}

func NewAccountsController(store AccountStore) *AccountsController {
	return &AccountsController{store: store}
}

// The account write bodies use the camelCase field names the desktop shell
// has always sent; responses are snake_case rows.
type createAccountRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// CreateAccount registers a new account.
// POST /api/accounts
func (ac *AccountsController) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Email == "" {
		respondBadRequest(c, "email is required")
		return
	}

	account, err := ac.store.CreateAccount(req.Email, req.FullName, req.Phone)
	if err != nil {
		if database.IsDuplicateKey(err) {
			respondConflict(c, "Email already exists")
			return
		}
		respondBadRequest(c, "could not create account")
		return
	}

	observability.AccountsCreated.Inc()
	c.JSON(http.StatusCreated, account)
}

// GetAccount returns an account by email, preferences included when present.
// GET /api/accounts/:email
func (ac *AccountsController) GetAccount(c *gin.Context) {
	account, err := ac.store.GetAccount(emailParam(c))
	if err != nil {
		respondReadError(c, err, "Account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// UpdateAccount changes the mutable account fields (full name and phone).
// PUT /api/accounts/:email
func (ac *AccountsController) UpdateAccount(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	account, err := ac.store.UpdateAccount(emailParam(c), req.FullName, req.Phone)
	if err != nil {
		respondWriteError(c, err, "Account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// DeleteAccount removes an account by email.
// DELETE /api/accounts/:email
func (ac *AccountsController) DeleteAccount(c *gin.Context) {
	if err := ac.store.DeleteAccount(emailParam(c)); err != nil {
		respondReadError(c, err, "Account")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPaymentMethods returns the payment methods attached to an account.
// GET /api/accounts/:email/payment-methods
func (ac *AccountsController) ListPaymentMethods(c *gin.Context) {
	account, err := ac.store.GetAccount(emailParam(c))
	if err != nil {
		respondReadError(c, err, "Account")
		return
	}

	methods, err := ac.store.GetPaymentMethods(account.ID)
	if err != nil {
		respondInternalError(c, err, "list payment methods")
		return
	}
	c.JSON(http.StatusOK, methods)
}
