// Package accounts provides database operations for rider accounts.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetAccount("rider@example.com")
package accounts

import (
	"time"

	"gorm.io/gorm"

	"github.com/wingmanapp/wingman/internal/database"
	"github.com/wingmanapp/wingman/internal/entities"
)

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAccount inserts an account and returns the row re-read from
// storage, so the caller sees the generated id and server-set timestamps.
// A second account with the same email fails with ErrDuplicateKey.
func (r *Repository) CreateAccount(email, fullName, phone string) (*entities.Account, error) {
	account := &entities.Account{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
	}
	if err := r.db.Create(account).Error; err != nil {
		return nil, database.ClassifyError("create account", err)
	}
	return r.getByID(account.ID)
}

// GetAccount retrieves an account by email with its preferences joined in.
// Missing preferences yield a nil Preferences field, not an error.
func (r *Repository) GetAccount(email string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Preload("Preferences").Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, database.ClassifyError("get account", err)
	}
	return &account, nil
}

// UpdateAccount changes full_name and phone for the account with the given
// email and returns the row re-read after the write. Email and id are
// immutable through this path. Zero matched rows fail with ErrNotFound.
func (r *Repository) UpdateAccount(email, fullName, phone string) (*entities.Account, error) {
	result := r.db.Model(&entities.Account{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"full_name":  fullName,
			"phone":      phone,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, database.ClassifyError("update account", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return r.GetAccount(email)
}

// DeleteAccount removes the account with the given email. Zero affected
// rows fail with ErrNotFound.
func (r *Repository) DeleteAccount(email string) error {
	result := r.db.Where("email = ?", email).Delete(&entities.Account{})
	if result.Error != nil {
		return database.ClassifyError("delete account", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// GetPaymentMethods lists the payment methods attached to an account.
// An account without any yields an empty slice.
func (r *Repository) GetPaymentMethods(accountID uint) ([]entities.PaymentMethod, error) {
	var methods []entities.PaymentMethod
	err := r.db.Where("account_id = ?", accountID).Find(&methods).Error
	if err != nil {
		return nil, database.ClassifyError("get payment methods", err)
	}
	return methods, nil
}

func (r *Repository) getByID(id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Preload("Preferences").First(&account, id).Error
	if err != nil {
		return nil, database.ClassifyError("get account", err)
	}
	return &account, nil
}
