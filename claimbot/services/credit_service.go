package services

import (
	"fmt"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/economy/claim"
	"github.com/disgoorg/claim-bot/claimbot/ledger"
	"github.com/disgoorg/snowflake/v2"
)

//go:generate mockgen -source=credit_service.go -destination=mock/clock.go -package=mock

// Clock is the source of claim timestamps.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// CreditService answers the daily claim and balance commands.
type CreditService struct {
	ledger *ledger.Ledger
	clock  Clock
	grant  int64
}

func NewCreditService(l *ledger.Ledger, clock Clock, grant int64) *CreditService {
	if grant <= 0 {
		grant = claim.Default.Grant
	}
	return &CreditService{
		ledger: l,
		clock:  clock,
		grant:  grant,
	}
}

// ClaimRequest claims the daily grant for userID at now and returns the reply.
func (s *CreditService) ClaimRequest(userID snowflake.ID, now time.Time) (string, error) {
	account, decision, err := s.ledger.CommitClaim(userID, now, s.grant)
	if err != nil {
		return "", fmt.Errorf("failed to claim for user %s: %w", userID, err)
	}
	return claim.Render(decision, account.Balance), nil
}

// BalanceRequest returns the balance reply for userID.
func (s *CreditService) BalanceRequest(userID snowflake.ID) string {
	return claim.RenderBalance(s.ledger.Read(userID).Balance)
}

// Claim is ClaimRequest at the service clock's current time.
func (s *CreditService) Claim(userID snowflake.ID) (string, error) {
	return s.ClaimRequest(userID, s.clock.Now())
}

func (s *CreditService) Balance(userID snowflake.ID) string {
	return s.BalanceRequest(userID)
}

func (s *CreditService) Grant() int64 {
	return s.grant
}
