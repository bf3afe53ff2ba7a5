package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account selects which counter on the user record a movement touches.
type Account string

const (
	AccountBalance    Account = "balance"
	AccountCommission Account = "commission"
)

type LedgerKind string

const (
	LedgerAuctionDebit     LedgerKind = "AUCTION_DEBIT"
	LedgerBuyNowDebit      LedgerKind = "BUY_NOW_DEBIT"
	LedgerSalePayout       LedgerKind = "SALE_PAYOUT"
	LedgerCommissionCredit LedgerKind = "COMMISSION_CREDIT"
	LedgerTopUp            LedgerKind = "TOP_UP"
)

// LedgerEntry is an append-only record of one balance movement.
type LedgerEntry struct {
	EntryID      string          `json:"entry_id"`
	UserID       string          `json:"user_id"`
	ProductID    string          `json:"product_id,omitempty"`
	RequestID    string          `json:"request_id,omitempty"`
	Account      Account         `json:"account"`
	Kind         LedgerKind      `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// BalanceMovement is a signed delta applied atomically to one account.
type BalanceMovement struct {
	UserID  string
	Account Account
	Kind    LedgerKind
	Amount  decimal.Decimal
}

type SettlementOutcome string

const (
	OutcomeSold   SettlementOutcome = "sold"
	OutcomeUnsold SettlementOutcome = "unsold"
)

// Settlement is the unit of work that moves a product out of the active
// state together with every balance movement the close implies.
type Settlement struct {
	ProductID string
	Outcome   SettlementOutcome
	WinnerID  string
	Price     decimal.Decimal
	Movements []BalanceMovement
	SettledAt time.Time
}
