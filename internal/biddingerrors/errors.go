package biddingerrors

import (
	"errors"
	"fmt"
)

// Repository errors
var (
	ErrProductNotFound      = errors.New("Product not found")
	ErrUserNotFound         = errors.New("User not found")
	ErrNoBids               = errors.New("No winning bid found for the product")
	ErrUserNoBids           = errors.New("no products found for user")
	ErrAlreadySettled       = errors.New("auction already settled")
	ErrRequestNotFound      = errors.New("Balance request not found")
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrDuplicateBid         = errors.New("bid already exists for this user and product")
)

// Business errors
var (
	ErrInvalidBid         = errors.New("invalid bid")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidRequest     = errors.New("invalid balance request")
	ErrProductNotVerified = errors.New("Bidding is not verified for these products.")
	ErrAuctionClosed      = errors.New("Bidding is closed")
	ErrOwnProduct         = errors.New("You cannot bid on your own product")
	ErrCurrencyMismatch   = errors.New("Bid must be in product currency")
	ErrAuctionNotStarted  = errors.New("Auction has not started yet")
	ErrAuctionEnded       = errors.New("Auction has ended")
	ErrBidTooLow          = errors.New("Your bid must be at least one increment higher than the current bid")
	ErrBelowStartingPrice = errors.New("Your bid is below the starting price")
	ErrBidNotAboveOwn     = errors.New("Your bid must be higher than your previous bid")
	ErrBidNotAboveHighest = errors.New("Your bid must be higher than the current highest bid")
	ErrRequestProcessed   = errors.New("This request has already been processed")
)

// Authorization and coordination errors
var (
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("authentication required")
	ErrLockHeld     = errors.New("product is busy, try again")
)

// Detailed wraps a sentinel with a client-facing message that carries
// request values, e.g. the increment a bid fell short of.
type Detailed struct {
	Err     error
	Message string
}

func (d *Detailed) Error() string { return d.Message }

func (d *Detailed) Unwrap() error { return d.Err }

// Detail builds a Detailed error around sentinel.
func Detail(sentinel error, format string, args ...any) error {
	return &Detailed{Err: sentinel, Message: fmt.Sprintf(format, args...)}
}
