package models

// SetKind identifies one of the content library's collection kinds.
type SetKind string

const (
	KindWords    SetKind = "words"
	KindScenario SetKind = "scenario"
	KindInquest  SetKind = "inquest"
	KindVirus    SetKind = "virus"
)

// WordPair is a similar-but-distinct word duo for word-based modes.
type WordPair struct {
	WordA string `json:"wordA"`
	WordB string `json:"wordB"`
}

// WordSet is a named collection of word pairs.
type WordSet struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Pairs []WordPair `json:"pairs"`
}

// ScenarioSet is a named collection of projects/locations/catches for
// the Scheme and Investment modes.
type ScenarioSet struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Projects  []string `json:"projects"`
	Locations []string `json:"locations"`
	Catches   []string `json:"catches"`
}

// InquestScenario is one Inquest mission: a real and a fake project
// plus the question/answer material shown during the question rounds.
type InquestScenario struct {
	ID          string   `json:"id"`
	RealProject string   `json:"realProject"`
	FakeProject string   `json:"fakeProject"`
	Location    string   `json:"location"`
	Options     []string `json:"options"`
	Questions   []string `json:"questions"`
}

// InquestSet is a named collection of inquest scenarios.
type InquestSet struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Scenarios []InquestScenario `json:"scenarios"`
}

// VirusSet is a named collection of virus words for the co-op mode.
type VirusSet struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Words []string `json:"words"`
}
