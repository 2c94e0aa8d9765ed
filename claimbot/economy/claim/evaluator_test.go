package claim

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/disgoorg/claim-bot/claimbot/models"
)

var t0 = time.Date(2024, time.March, 10, 23, 0, 0, 0, time.UTC)

func claimedAt(first time.Time, period int64) models.Account {
	return models.Account{
		UserID:  123,
		Claim:   &models.ClaimState{FirstClaimAt: first, LastPeriodClaimed: period},
		Balance: 30 * (period + 1),
	}
}

func TestEvaluate(t *testing.T) {
	type args struct {
		account models.Account
		now     time.Time
	}
	tests := []struct {
		name    string
		args    args
		want    Decision
		wantErr error
	}{
		{
			name: "Fresh account",
			args: args{account: models.Account{UserID: 123}, now: t0},
			want: FirstClaim{Grant: 30},
		},
		{
			name: "Same instant as first claim",
			args: args{account: claimedAt(t0, 0), now: t0},
			want: AlreadyClaimed{Period: 0, WaitHours: 24, WaitMinutes: 0},
		},
		{
			name: "One minute before boundary",
			args: args{account: claimedAt(t0, 0), now: t0.Add(23*time.Hour + 59*time.Minute)},
			want: AlreadyClaimed{Period: 0, WaitHours: 0, WaitMinutes: 1},
		},
		{
			name: "Exactly on boundary",
			args: args{account: claimedAt(t0, 0), now: t0.Add(24 * time.Hour)},
			want: Granted{Grant: 30, NewPeriod: 1},
		},
		{
			name: "Rolling window ignores midnight",
			args: args{account: claimedAt(t0, 0), now: time.Date(2024, time.March, 11, 0, 30, 0, 0, time.UTC)},
			want: AlreadyClaimed{Period: 0, WaitHours: 22, WaitMinutes: 30},
		},
		{
			name: "Skipped periods",
			args: args{account: claimedAt(t0, 1), now: t0.Add(5*24*time.Hour + time.Hour)},
			want: Granted{Grant: 30, NewPeriod: 5},
		},
		{
			name: "Ten hours in",
			args: args{account: claimedAt(t0, 0), now: t0.Add(10 * time.Hour)},
			want: AlreadyClaimed{Period: 0, WaitHours: 14, WaitMinutes: 0},
		},
		{
			name: "Ten hours five minutes in",
			args: args{account: claimedAt(t0, 0), now: t0.Add(10*time.Hour + 5*time.Minute)},
			want: AlreadyClaimed{Period: 0, WaitHours: 13, WaitMinutes: 55},
		},
		{
			name: "Minutes truncate",
			args: args{account: claimedAt(t0, 0), now: t0.Add(10*time.Hour + 5*time.Minute + 30*time.Second)},
			want: AlreadyClaimed{Period: 0, WaitHours: 13, WaitMinutes: 54},
		},
		{
			name: "Later period already claimed",
			args: args{account: claimedAt(t0, 3), now: t0.Add(3*24*time.Hour + 20*time.Hour)},
			want: AlreadyClaimed{Period: 3, WaitHours: 4, WaitMinutes: 0},
		},
		{
			name:    "Now before first claim",
			args:    args{account: claimedAt(t0, 0), now: t0.Add(-time.Second)},
			wantErr: ErrClockSkew,
		},
		{
			name:    "Now before last claimed period",
			args:    args{account: claimedAt(t0, 4), now: t0.Add(2 * 24 * time.Hour)},
			wantErr: ErrClockSkew,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.args.account, tt.args.now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() got = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	account := claimedAt(t0, 0)
	before := *account.Claim

	if _, err := Evaluate(account, t0.Add(48*time.Hour)); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if *account.Claim != before || account.Balance != 30 {
		t.Errorf("Evaluate() mutated account: %+v", account)
	}
}

func TestEvaluator_CustomGrant(t *testing.T) {
	e := Evaluator{Grant: 50, Period: 24 * time.Hour}

	got, err := e.Evaluate(claimedAt(t0, 0), t0.Add(25*time.Hour))
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if want := (Granted{Grant: 50, NewPeriod: 1}); got != want {
		t.Errorf("Evaluate() got = %#v, want %#v", got, want)
	}
}

func TestEvaluator_PeriodIndex(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"Start", 0, 0},
		{"Last nanosecond of period 0", 24*time.Hour - 1, 0},
		{"Start of period 1", 24 * time.Hour, 1},
		{"Mid period 7", 7*24*time.Hour + 12*time.Hour, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default.PeriodIndex(t0, t0.Add(tt.elapsed))
			if err != nil {
				t.Fatalf("PeriodIndex() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PeriodIndex() got = %v, want %v", got, tt.want)
			}
		})
	}
}
