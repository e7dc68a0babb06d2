package treasury

import (
	"context"
	"fmt"
	"log"

	"github.com/Bukola-tech/NFTMarketHub/pkg/access"
	"github.com/Bukola-tech/NFTMarketHub/pkg/notify"
)

type TreasuryService interface {
	GetPooledBalance(ctx context.Context) (int64, error)
	GetWalletBalance(ctx context.Context, accountUUID string) (int64, error)
	Deposit(ctx context.Context, accountUUID string, amount int64) (int64, error)
	Withdraw(ctx context.Context, callerUUID string) (int64, error)
}

// Publisher pushes custody events to connected feed subscribers.
type Publisher interface {
	PublishFundsWithdrawn(adminUUID string, amount int64)
}

type treasuryService struct {
	repo       TreasuryRepository
	adminUUID  string
	adminEmail string
	email      notify.EmailService
	publisher  Publisher
}

func NewTreasuryService(repo TreasuryRepository, adminUUID, adminEmail string, email notify.EmailService, publisher Publisher) TreasuryService {
	return &treasuryService{
		repo:       repo,
		adminUUID:  adminUUID,
		adminEmail: adminEmail,
		email:      email,
		publisher:  publisher,
	}
}

func (s *treasuryService) GetPooledBalance(ctx context.Context) (int64, error) {
	return s.repo.GetPooledBalance(ctx)
}

func (s *treasuryService) GetWalletBalance(ctx context.Context, accountUUID string) (int64, error) {
	return s.repo.GetWalletBalance(ctx, accountUUID)
}

func (s *treasuryService) Deposit(ctx context.Context, accountUUID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return s.repo.Deposit(ctx, accountUUID, amount)
}

func (s *treasuryService) Withdraw(ctx context.Context, callerUUID string) (int64, error) {
	if err := access.CheckAdmin(callerUUID, s.adminUUID).Err(); err != nil {
		return 0, err
	}

	amount, err := s.repo.Withdraw(ctx, s.adminUUID)
	if err != nil {
		return 0, err
	}

	// Side effects only after the transfer is committed.
	if s.publisher != nil {
		s.publisher.PublishFundsWithdrawn(s.adminUUID, amount)
	}

	if s.email != nil && s.adminEmail != "" {
		subject := "NFTMarketHub withdrawal receipt"
		body := fmt.Sprintf("Withdrew %d from the pooled marketplace balance.", amount)
		if err := s.email.SendEmail(subject, s.adminEmail, body, ""); err != nil {
			log.Printf("withdrawal receipt email failed: %v", err)
		}
	}

	return amount, nil
}
