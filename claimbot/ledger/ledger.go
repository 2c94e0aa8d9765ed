package ledger

import (
	"log/slog"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/economy/claim"
	"github.com/disgoorg/claim-bot/claimbot/models"
	"github.com/disgoorg/snowflake/v2"
	"github.com/puzpuzpuz/xsync/v3"
)

// Ledger holds every user's account for the lifetime of the process.
// Mutations for one user are serialized; different users only share a
// bucket lock when their ids hash to the same bucket.
type Ledger struct {
	accounts *xsync.MapOf[snowflake.ID, models.Account]
	period   time.Duration
}

// Totals summarizes the ledger for reporting.
type Totals struct {
	Accounts        int
	ClaimedAccounts int
	Credits         int64
	Claims          int64
}

func New() *Ledger {
	return &Ledger{
		accounts: xsync.NewMapOf[snowflake.ID, models.Account](),
		period:   claim.Default.Period,
	}
}

// GetOrCreate returns the user's account, creating an empty one if needed.
func (l *Ledger) GetOrCreate(userID snowflake.ID) models.Account {
	account, loaded := l.accounts.LoadOrCompute(userID, func() models.Account {
		return models.Account{UserID: userID}
	})
	if !loaded {
		slog.Debug("Account created",
			slog.String("type", "ledger"),
			slog.String("user_id", userID.String()))
	}
	return account
}

// Read returns the user's current account without changing it.
// Unknown users are created with a zero balance.
func (l *Ledger) Read(userID snowflake.ID) models.Account {
	return l.GetOrCreate(userID)
}

// CommitClaim evaluates a claim at now and applies the decision in one step.
// The returned account is the state after the decision was applied.
func (l *Ledger) CommitClaim(userID snowflake.ID, now time.Time, grant int64) (models.Account, claim.Decision, error) {
	evaluator := claim.Evaluator{Grant: grant, Period: l.period}

	var (
		decision claim.Decision
		err      error
	)
	account, _ := l.accounts.Compute(userID, func(current models.Account, loaded bool) (models.Account, bool) {
		if !loaded {
			current = models.Account{UserID: userID}
		}
		decision, err = evaluator.Evaluate(current, now)
		if err != nil {
			return current, false
		}
		return apply(current, decision, now), false
	})
	if err != nil {
		slog.Error("Claim rejected",
			slog.String("type", "ledger"),
			slog.String("user_id", userID.String()),
			slog.Time("now", now),
			slog.Any("error", err))
		return account, nil, err
	}

	slog.Debug("Claim evaluated",
		slog.String("type", "ledger"),
		slog.String("user_id", userID.String()),
		slog.String("decision", decisionName(decision)),
		slog.Int64("balance", account.Balance))

	return account, decision, nil
}

// Len returns the number of accounts.
func (l *Ledger) Len() int {
	return l.accounts.Size()
}

// Totals walks every account. The result is not a point-in-time snapshot
// when claims are committed concurrently.
func (l *Ledger) Totals() Totals {
	var t Totals
	l.accounts.Range(func(_ snowflake.ID, account models.Account) bool {
		t.Accounts++
		if account.HasClaimed() {
			t.ClaimedAccounts++
		}
		t.Credits += account.Balance
		t.Claims += account.Claims
		return true
	})
	return t
}

func apply(account models.Account, decision claim.Decision, now time.Time) models.Account {
	switch d := decision.(type) {
	case claim.FirstClaim:
		account.Claim = &models.ClaimState{FirstClaimAt: now, LastPeriodClaimed: 0}
		account.Balance += d.Grant
		account.Claims++
	case claim.Granted:
		account.Claim = &models.ClaimState{
			FirstClaimAt:      account.Claim.FirstClaimAt,
			LastPeriodClaimed: d.NewPeriod,
		}
		account.Balance += d.Grant
		account.Claims++
	}
	return account
}

func decisionName(d claim.Decision) string {
	switch d.(type) {
	case claim.FirstClaim:
		return "first_claim"
	case claim.Granted:
		return "granted"
	case claim.AlreadyClaimed:
		return "already_claimed"
	default:
		return "unknown"
	}
}
