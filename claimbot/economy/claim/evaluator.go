package claim

import (
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/config"
	"github.com/disgoorg/claim-bot/claimbot/models"
)

// ErrClockSkew is returned when the claim time falls before the account's
// first claim, or before the period it last claimed in.
var ErrClockSkew = errors.New("claim time precedes recorded claim")

// Decision is the outcome of evaluating a claim request.
// It is one of FirstClaim, Granted or AlreadyClaimed.
type Decision interface {
	decision()
}

// FirstClaim is returned for an account that has never claimed.
// The caller anchors the account at now with period 0.
type FirstClaim struct {
	Grant int64
}

// Granted is returned when now falls in a period after the last claimed one.
type Granted struct {
	Grant     int64
	NewPeriod int64
}

// AlreadyClaimed is returned when the current period was already claimed.
type AlreadyClaimed struct {
	Period      int64
	WaitHours   int64
	WaitMinutes int64
}

func (FirstClaim) decision()     {}
func (Granted) decision()        {}
func (AlreadyClaimed) decision() {}

type Evaluator struct {
	Grant  int64
	Period time.Duration
}

// Default grants 30 credits per rolling 24h window.
var Default = Evaluator{
	Grant:  config.DailyClaimGrant,
	Period: config.DailyClaimPeriod,
}

// Evaluate decides a claim with the default grant and period.
func Evaluate(account models.Account, now time.Time) (Decision, error) {
	return Default.Evaluate(account, now)
}

// PeriodIndex returns floor((now - firstClaimAt) / period).
func (e Evaluator) PeriodIndex(firstClaimAt, now time.Time) (int64, error) {
	elapsed := now.Sub(firstClaimAt)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: now %s is before first claim %s",
			ErrClockSkew, now.Format(time.RFC3339), firstClaimAt.Format(time.RFC3339))
	}
	return int64(elapsed / e.Period), nil
}

// NextPeriodStart returns the instant the period after current begins.
func (e Evaluator) NextPeriodStart(firstClaimAt time.Time, current int64) time.Time {
	return firstClaimAt.Add(time.Duration(current+1) * e.Period)
}

func (e Evaluator) Evaluate(account models.Account, now time.Time) (Decision, error) {
	if account.Claim == nil {
		return FirstClaim{Grant: e.Grant}, nil
	}

	current, err := e.PeriodIndex(account.Claim.FirstClaimAt, now)
	if err != nil {
		return nil, err
	}

	switch {
	case current > account.Claim.LastPeriodClaimed:
		return Granted{Grant: e.Grant, NewPeriod: current}, nil
	case current < account.Claim.LastPeriodClaimed:
		return nil, fmt.Errorf("%w: period %d is before last claimed period %d",
			ErrClockSkew, current, account.Claim.LastPeriodClaimed)
	}

	left := e.NextPeriodStart(account.Claim.FirstClaimAt, current).Sub(now)
	return AlreadyClaimed{
		Period:      current,
		WaitHours:   int64(left / time.Hour),
		WaitMinutes: int64((left % time.Hour) / time.Minute),
	}, nil
}
