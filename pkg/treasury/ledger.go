package treasury

import "errors"

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// Ledger is a native-value balance that can never go negative. Both the
// pooled custodial balance and per-account wallets move through it before
// any row is written.
type Ledger struct {
	balance int64
}

func NewLedger(balance int64) Ledger {
	return Ledger{balance: balance}
}

func (l *Ledger) Balance() int64 {
	return l.balance
}

func (l *Ledger) Credit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	l.balance += amount
	return nil
}

func (l *Ledger) Debit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount > l.balance {
		return ErrInsufficientBalance
	}
	l.balance -= amount
	return nil
}
