package accounts

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("account exists with that email")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AccountService interface {
	Register(ctx context.Context, name, email, password string) (Account, error)
	Login(ctx context.Context, email, password string) (Account, error)
	GetAccountByUUID(ctx context.Context, accountUUID string) (Account, error)
}

type accountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) AccountService {
	return &accountService{repo: repo}
}

func (s *accountService) Register(ctx context.Context, name, email, password string) (Account, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	a, err := s.repo.CreateAccount(ctx, name, email, string(hashBytes), uuid.NewString())
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return Account{}, ErrEmailTaken
		}
		return Account{}, err
	}
	return a, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (Account, error) {
	accountUUID, hash, err := s.repo.GetAccountAuthByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}

	return s.repo.GetAccountByUUID(ctx, accountUUID)
}

func (s *accountService) GetAccountByUUID(ctx context.Context, accountUUID string) (Account, error) {
	return s.repo.GetAccountByUUID(ctx, accountUUID)
}
