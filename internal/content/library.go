// Package content owns the game's mission material: the user-editable
// set library, the built-in defaults, and the context builder that
// resolves one session's shared secrets (optionally through the AI
// provider, always with a deterministic local fallback).
package content

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/imposterpurge/engine/internal/game"
	"github.com/imposterpurge/engine/internal/models"
	"github.com/imposterpurge/engine/internal/store"
)

var (
	// ErrNoActiveSets is a configuration error: a draw was attempted
	// with no active sets for the kind.
	ErrNoActiveSets = errors.New("no active content sets")
	// ErrLastSet rejects deleting the only remaining set of a kind.
	ErrLastSet = errors.New("cannot delete the last content set")
	// ErrSetNotFound rejects edits against an unknown set id.
	ErrSetNotFound = errors.New("content set not found")
)

// storedSets is the persisted shape of one collection kind.
type storedSets[T any] struct {
	Sets      []T      `json:"sets"`
	ActiveIDs []string `json:"activeIds"`
}

// collection holds one kind's sets plus its active selection. The id
// accessor keeps the generic plumbing in one place.
type collection[T any] struct {
	key    string
	sets   []T
	active []string
	id     func(T) string
}

func (c *collection[T]) isActive(id string) bool {
	for _, a := range c.active {
		if a == id {
			return true
		}
	}
	return false
}

func (c *collection[T]) index(id string) int {
	for i, s := range c.sets {
		if c.id(s) == id {
			return i
		}
	}
	return -1
}

// ensureActive restores the non-empty active invariant after an edit.
func (c *collection[T]) ensureActive() {
	kept := c.active[:0]
	for _, id := range c.active {
		if c.index(id) >= 0 {
			kept = append(kept, id)
		}
	}
	c.active = kept
	if len(c.active) == 0 && len(c.sets) > 0 {
		c.active = []string{c.id(c.sets[0])}
	}
}

func (c *collection[T]) load(st store.Store) {
	if st == nil {
		return
	}
	var saved storedSets[T]
	ok, err := st.Get(c.key, &saved)
	if err != nil {
		log.Printf("content library load %s failed, using defaults: %v", c.key, err)
		return
	}
	if ok && len(saved.Sets) > 0 {
		c.sets = saved.Sets
		c.active = saved.ActiveIDs
		c.ensureActive()
	}
}

func (c *collection[T]) persist(st store.Store) {
	if st == nil {
		return
	}
	if err := st.Set(c.key, storedSets[T]{Sets: c.sets, ActiveIDs: c.active}); err != nil {
		log.Printf("content library save %s failed: %v", c.key, err)
	}
}

// Library holds the named content collections a session draws from.
// Custom edits persist through the store collaborator; storage
// failures degrade to in-memory defaults.
type Library struct {
	mu sync.RWMutex
	st store.Store

	words     collection[models.WordSet]
	scenarios collection[models.ScenarioSet]
	inquests  collection[models.InquestSet]
	viruses   collection[models.VirusSet]
}

// NewLibrary builds a library seeded with the default sets, overlaid
// with any persisted custom edits.
func NewLibrary(st store.Store) *Library {
	lib := &Library{
		st: st,
		words: collection[models.WordSet]{
			key: store.KeyWordSets, sets: DefaultWordSets(),
			active: []string{"default-words"},
			id:     func(s models.WordSet) string { return s.ID },
		},
		scenarios: collection[models.ScenarioSet]{
			key: store.KeyScenarioSets, sets: DefaultScenarioSets(),
			active: []string{"default"},
			id:     func(s models.ScenarioSet) string { return s.ID },
		},
		inquests: collection[models.InquestSet]{
			key: store.KeyInquestSets, sets: DefaultInquestSets(),
			active: []string{"default-inquest"},
			id:     func(s models.InquestSet) string { return s.ID },
		},
		viruses: collection[models.VirusSet]{
			key: store.KeyVirusSets, sets: DefaultVirusSets(),
			active: []string{"virus-default"},
			id:     func(s models.VirusSet) string { return s.ID },
		},
	}
	lib.words.load(st)
	lib.scenarios.load(st)
	lib.inquests.load(st)
	lib.viruses.load(st)
	return lib
}

// SetActive replaces the active selection for a kind. An empty
// selection is a configuration error; the previous selection stands.
func (l *Library) SetActive(kind models.SetKind, ids []string) error {
	if len(ids) == 0 {
		return ErrNoActiveSets
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	switch kind {
	case models.KindWords:
		return setActive(&l.words, ids, l.st)
	case models.KindScenario:
		return setActive(&l.scenarios, ids, l.st)
	case models.KindInquest:
		return setActive(&l.inquests, ids, l.st)
	case models.KindVirus:
		return setActive(&l.viruses, ids, l.st)
	default:
		return fmt.Errorf("unknown set kind %q", kind)
	}
}

func setActive[T any](c *collection[T], ids []string, st store.Store) error {
	for _, id := range ids {
		if c.index(id) < 0 {
			return fmt.Errorf("%w: %s", ErrSetNotFound, id)
		}
	}
	c.active = append([]string(nil), ids...)
	c.persist(st)
	return nil
}

func upsert[T any](c *collection[T], set T, id string, st store.Store) error {
	if i := c.index(id); i >= 0 {
		c.sets[i] = set
	} else {
		c.sets = append(c.sets, set)
	}
	c.ensureActive()
	c.persist(st)
	return nil
}

func remove[T any](c *collection[T], id string, st store.Store) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSetNotFound, id)
	}
	if len(c.sets) == 1 {
		return ErrLastSet
	}
	c.sets = append(c.sets[:i], c.sets[i+1:]...)
	c.ensureActive()
	c.persist(st)
	return nil
}

// UpsertWordSet adds or replaces a word set; a blank id mints one.
func (l *Library) UpsertWordSet(set models.WordSet) (models.WordSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	return set, upsert(&l.words, set, set.ID, l.st)
}

// DeleteWordSet removes a word set, keeping the active list non-empty.
func (l *Library) DeleteWordSet(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return remove(&l.words, id, l.st)
}

// UpsertScenarioSet adds or replaces a scenario set.
func (l *Library) UpsertScenarioSet(set models.ScenarioSet) (models.ScenarioSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	return set, upsert(&l.scenarios, set, set.ID, l.st)
}

// DeleteScenarioSet removes a scenario set.
func (l *Library) DeleteScenarioSet(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return remove(&l.scenarios, id, l.st)
}

// UpsertInquestSet adds or replaces an inquest set.
func (l *Library) UpsertInquestSet(set models.InquestSet) (models.InquestSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	return set, upsert(&l.inquests, set, set.ID, l.st)
}

// DeleteInquestSet removes an inquest set.
func (l *Library) DeleteInquestSet(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return remove(&l.inquests, id, l.st)
}

// UpsertVirusSet adds or replaces a virus set.
func (l *Library) UpsertVirusSet(set models.VirusSet) (models.VirusSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	return set, upsert(&l.viruses, set, set.ID, l.st)
}

// DeleteVirusSet removes a virus set.
func (l *Library) DeleteVirusSet(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return remove(&l.viruses, id, l.st)
}

// WordSets returns all word sets plus the active selection.
func (l *Library) WordSets() ([]models.WordSet, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.WordSet(nil), l.words.sets...), append([]string(nil), l.words.active...)
}

// ScenarioSets returns all scenario sets plus the active selection.
func (l *Library) ScenarioSets() ([]models.ScenarioSet, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.ScenarioSet(nil), l.scenarios.sets...), append([]string(nil), l.scenarios.active...)
}

// InquestSets returns all inquest sets plus the active selection.
func (l *Library) InquestSets() ([]models.InquestSet, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.InquestSet(nil), l.inquests.sets...), append([]string(nil), l.inquests.active...)
}

// VirusSets returns all virus sets plus the active selection.
func (l *Library) VirusSets() ([]models.VirusSet, []string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]models.VirusSet(nil), l.viruses.sets...), append([]string(nil), l.viruses.active...)
}

// DrawnPair is a word pair draw plus the set it came from.
type DrawnPair struct {
	Pair    models.WordPair
	SetName string
}

// DrawWordPair selects uniformly from the union of active word sets.
func (l *Library) DrawWordPair(rng game.Source) (DrawnPair, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	type item struct {
		pair models.WordPair
		name string
	}
	var pool []item
	for _, s := range l.words.sets {
		if !l.words.isActive(s.ID) {
			continue
		}
		for _, p := range s.Pairs {
			pool = append(pool, item{pair: p, name: s.Name})
		}
	}
	if len(pool) == 0 {
		return DrawnPair{}, ErrNoActiveSets
	}
	picked := pool[rng.Intn(len(pool))]
	return DrawnPair{Pair: picked.pair, SetName: picked.name}, nil
}

// ActiveWords returns every word appearing in the active word sets.
func (l *Library) ActiveWords() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var words []string
	for _, s := range l.words.sets {
		if !l.words.isActive(s.ID) {
			continue
		}
		for _, p := range s.Pairs {
			words = append(words, p.WordA, p.WordB)
		}
	}
	return words
}

// DrawnScenario is one Scheme/Investment mission draw.
type DrawnScenario struct {
	Project  string
	Location string
	Catch    string
	SetName  string
	// Others holds the remaining projects of the drawn set, used to
	// build local decoys and distractors.
	Others []string
}

// DrawScenario selects a set uniformly among active scenario sets and
// draws project, location and catch from it.
func (l *Library) DrawScenario(rng game.Source) (DrawnScenario, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var active []models.ScenarioSet
	for _, s := range l.scenarios.sets {
		if l.scenarios.isActive(s.ID) && len(s.Projects) > 0 && len(s.Locations) > 0 && len(s.Catches) > 0 {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		return DrawnScenario{}, ErrNoActiveSets
	}
	set := active[rng.Intn(len(active))]
	project := set.Projects[rng.Intn(len(set.Projects))]
	var others []string
	for _, p := range set.Projects {
		if p != project {
			others = append(others, p)
		}
	}
	return DrawnScenario{
		Project:  project,
		Location: set.Locations[rng.Intn(len(set.Locations))],
		Catch:    set.Catches[rng.Intn(len(set.Catches))],
		SetName:  set.Name,
		Others:   others,
	}, nil
}

// DrawnInquest is an inquest scenario draw plus its set name.
type DrawnInquest struct {
	Scenario models.InquestScenario
	SetName  string
}

// DrawInquest selects uniformly from the union of active inquest sets.
func (l *Library) DrawInquest(rng game.Source) (DrawnInquest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	type item struct {
		sc   models.InquestScenario
		name string
	}
	var pool []item
	for _, s := range l.inquests.sets {
		if !l.inquests.isActive(s.ID) {
			continue
		}
		for _, sc := range s.Scenarios {
			pool = append(pool, item{sc: sc, name: s.Name})
		}
	}
	if len(pool) == 0 {
		return DrawnInquest{}, ErrNoActiveSets
	}
	picked := pool[rng.Intn(len(pool))]
	return DrawnInquest{Scenario: picked.sc, SetName: picked.name}, nil
}

// DrawVirusWord selects uniformly from the union of active virus sets.
func (l *Library) DrawVirusWord(rng game.Source) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var pool []string
	for _, s := range l.viruses.sets {
		if !l.viruses.isActive(s.ID) {
			continue
		}
		pool = append(pool, s.Words...)
	}
	if len(pool) == 0 {
		return "", ErrNoActiveSets
	}
	return pool[rng.Intn(len(pool))], nil
}
