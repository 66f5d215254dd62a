package models

import "time"

// ParentalSettings holds parental controls for one user. At most one row per
// user exists; reads fall back to DefaultParentalSettings when none is stored.
//
// DailyLimitHours is kept as a whole-number string ("0".."24") because the
// client treats empty/absent as "no limit"; nil means no limit.
type ParentalSettings struct {
	ID                     string      `json:"id"`
	UserID                 string      `json:"-"`
	BlockViolence          bool        `json:"block_violence"`
	BlockInappropriate     bool        `json:"block_inappropriate"`
	DailyLimitHours        *string     `json:"daily_limit_hours,omitempty"`
	DowntimeEnabled        bool        `json:"downtime_enabled"`
	DowntimeDays           []DayOfWeek `json:"downtime_days"`
	DowntimeStart          string      `json:"downtime_start"`
	DowntimeEnd            string      `json:"downtime_end"`
	RequirePasscode        bool        `json:"require_passcode"`
	HashedParentalPasscode *string     `json:"-"`
	NotifyEmails           []string    `json:"notify_emails"`
	AsdLevel               *AsdLevel   `json:"asd_level,omitempty"`
	DataSharingPreference  bool        `json:"data_sharing_preference"`
	CreatedAt              time.Time   `json:"created_at"`
	UpdatedAt              time.Time   `json:"updated_at"`
}

// DefaultParentalSettings returns the defaults served when a user has never
// saved parental settings. The defaults are not persisted by reads.
func DefaultParentalSettings() *ParentalSettings {
	return &ParentalSettings{
		ID:            "defaults",
		DowntimeDays:  []DayOfWeek{},
		DowntimeStart: "21:00",
		DowntimeEnd:   "07:00",
		NotifyEmails:  []string{},
	}
}
