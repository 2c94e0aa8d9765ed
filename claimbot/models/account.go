package models

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// Account is the per-user credit record held by the ledger.
// Values are snapshots; the ledger never hands out a shared pointer.
type Account struct {
	UserID snowflake.ID

	// Claim is nil until the first successful claim.
	Claim *ClaimState

	Balance int64
	Claims  int64
}

// ClaimState anchors the user's claim periods.
type ClaimState struct {
	FirstClaimAt      time.Time
	LastPeriodClaimed int64
}

// HasClaimed reports whether the account has made its first claim.
func (a Account) HasClaimed() bool {
	return a.Claim != nil
}
