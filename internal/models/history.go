package models

// Winner identifies which side took a finished session.
type Winner string

const (
	WinnerNeighbors Winner = "NEIGHBORS"
	WinnerImposters Winner = "IMPOSTERS"
	WinnerAnarchist Winner = "ANARCHIST"
	WinnerMimic     Winner = "MIMIC"
	WinnerHumans    Winner = "HUMANS"
	WinnerVirus     Winner = "VIRUS"
)

// Rogue reports whether the winner is a lone rogue role rather than a team.
func (w Winner) Rogue() bool { return w == WinnerAnarchist || w == WinnerMimic }

// RosterEntry is one player snapshot stored with a history record.
type RosterEntry struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// HistoryEntry is one finished session in the append-only history log.
type HistoryEntry struct {
	ID     string        `json:"id"`
	Date   string        `json:"date"`
	Winner Winner        `json:"winner"`
	Reason string        `json:"reason"`
	Mode   MainMode      `json:"mode"`
	Roster []RosterEntry `json:"players"`
}

// MaxHistoryEntries caps the history log; older entries are dropped.
const MaxHistoryEntries = 50
