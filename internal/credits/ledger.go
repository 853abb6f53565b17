package credits

import (
	"time"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
)

// Ledger is the credit-accounting facade. Deduction itself never checks
// sufficiency; callers use the Check* helpers first and reject the action
// with an insufficient-credits error before anything deducts.
type Ledger struct {
	users            *repositories.UserRepository
	monthlyAllowance int
}

func NewLedger(users *repositories.UserRepository, monthlyAllowance int) *Ledger {
	return &Ledger{users: users, monthlyAllowance: monthlyAllowance}
}

func (l *Ledger) GetCredits(userID string) (models.CreditsResponse, error) {
	return l.users.GetCredits(userID)
}

// CheckInterviewCredits reports whether the user can afford an interview.
func (l *Ledger) CheckInterviewCredits(userID string) (bool, error) {
	balance, err := l.users.GetCredits(userID)
	if err != nil {
		return false, err
	}
	return balance.InterviewCredits > 0, nil
}

// CheckResumeCredits applies the pull-based monthly renewal, then reports
// whether the user can afford a resume analysis.
func (l *Ledger) CheckResumeCredits(userID string) (bool, error) {
	if _, err := l.users.RenewResumeCreditsIfNewMonth(userID, l.monthlyAllowance, time.Now()); err != nil {
		return false, err
	}
	balance, err := l.users.GetCredits(userID)
	if err != nil {
		return false, err
	}
	return balance.ResumeCredits > 0, nil
}

func (l *Ledger) DeductInterviewCredit(userID string) error {
	return l.users.DeductInterviewCredit(userID)
}

func (l *Ledger) DeductResumeCredit(userID string) error {
	return l.users.DeductResumeCredit(userID)
}

// GrantUnlimited applies the pro-subscriber override: both counters are
// set to the unlimited sentinel rather than modeling unlimited as a flag
// consulted everywhere.
func (l *Ledger) GrantUnlimited(userID, subscriptionID string) error {
	return l.users.GrantUnlimited(userID, subscriptionID)
}
