// Package store is the persistence collaborator: key-value storage of
// settings, the score ledger, session history and custom content sets.
// Storage failures are non-fatal for the engine; callers fall back to
// defaults when a read fails.
package store

// Well-known storage keys.
const (
	KeySettings     = "imposter_settings"
	KeyPoints       = "imposter_points"
	KeyCredits      = "imposter_credits"
	KeyHistory      = "imposter_history"
	KeyWordSets     = "imposter_sets_words"
	KeyScenarioSets = "imposter_sets_scenario"
	KeyInquestSets  = "imposter_sets_inquest"
	KeyVirusSets    = "imposter_sets_virus"
)

// Store is the narrow get/set/remove contract the engine needs.
// Values are marshaled to JSON by the implementation.
type Store interface {
	// Get unmarshals the stored value for key into out; the boolean
	// reports whether the key was present.
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Remove(key string) error
	Close() error
}
