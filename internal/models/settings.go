package models

// Settings are user preferences that survive across sessions. They are
// read through the storage collaborator; missing or unreadable values
// fall back to the defaults below.
type Settings struct {
	MeetingDurationSec   int  `json:"meetingDuration"`
	LastStandDurationSec int  `json:"lastStandDuration"`
	RequireConfirmation  bool `json:"requireRememberConfirmation"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		MeetingDurationSec:   120,
		LastStandDurationSec: 10,
		RequireConfirmation:  true,
	}
}

// Normalize clamps nonsense values back to defaults so a corrupted
// settings blob can never stall a timer phase.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.MeetingDurationSec <= 0 {
		s.MeetingDurationSec = def.MeetingDurationSec
	}
	if s.LastStandDurationSec <= 0 {
		s.LastStandDurationSec = def.LastStandDurationSec
	}
	return s
}
