package models

// Interview lifecycle statuses. Transitions only move forward
// (not_started -> in_progress -> completed); paused is a side state
// reachable from in_progress via a direct update.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusPaused     = "paused"
)

const (
	ModeTechnical  = "technical"
	ModeBehavioral = "behavioral"
	ModeMixed      = "mixed"
)

const (
	LevelJunior = "Junior"
	LevelMid    = "Mid"
	LevelSenior = "Senior"
	LevelLead   = "Lead"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

const (
	ShareTypeDirect = "direct"
	ShareTypeRepost = "repost"
	ShareTypeQuote  = "quote"
)

// Question count bounds enforced by the generation schema.
const (
	MinQuestions = 1
	MaxQuestions = 10
)

// UnlimitedCredits is the sentinel balance granted to pro subscribers.
// It serializes as a plain 999 for compatibility with existing clients;
// use IsUnlimited instead of comparing against the literal.
const UnlimitedCredits = 999

// IsUnlimited reports whether a credit balance represents the pro
// "practically unlimited" grant.
func IsUnlimited(balance int) bool {
	return balance >= UnlimitedCredits
}

func ValidStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

func ValidMode(m string) bool {
	switch m {
	case ModeTechnical, ModeBehavioral, ModeMixed:
		return true
	}
	return false
}

func ValidLevel(l string) bool {
	switch l {
	case LevelJunior, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func ValidShareType(s string) bool {
	switch s {
	case ShareTypeDirect, ShareTypeRepost, ShareTypeQuote:
		return true
	}
	return false
}
