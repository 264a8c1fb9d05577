package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/emicon/internal/domain/entity"
	"github.com/bnema/emicon/internal/domain/search"
	"github.com/bnema/emicon/internal/logging"
)

// ErrDatasetAlreadyProvided is returned when the dataset is provided twice.
var ErrDatasetAlreadyProvided = errors.New("dataset already provided")

// SessionState is a snapshot of the search session.
type SessionState struct {
	Query      string
	Selection  entity.Selection
	Candidates []entity.Candidate
	Loaded     bool
}

// SessionObserver is notified after every session change.
type SessionObserver func(SessionState)

// EmojiSessionUseCase owns the selection state and the ranked candidate list.
// It is safe for concurrent use. Observers run on the goroutine that caused
// the change, after the internal lock is released.
type EmojiSessionUseCase struct {
	mu         sync.Mutex
	emojis     []entity.Emoji
	loaded     bool
	query      string
	selection  entity.Selection
	candidates []entity.Candidate

	observers map[int]SessionObserver
	nextID    int
}

// NewEmojiSessionUseCase creates a session starting at the default selection.
func NewEmojiSessionUseCase() *EmojiSessionUseCase {
	uc := &EmojiSessionUseCase{
		selection: entity.DefaultSelection(),
		observers: make(map[int]SessionObserver),
	}
	uc.candidates = search.Rank(uc.query, nil, uc.selection)
	return uc
}

// Subscribe registers an observer and returns a function that removes it.
func (uc *EmojiSessionUseCase) Subscribe(fn SessionObserver) func() {
	uc.mu.Lock()
	id := uc.nextID
	uc.nextID++
	uc.observers[id] = fn
	uc.mu.Unlock()

	return func() {
		uc.mu.Lock()
		delete(uc.observers, id)
		uc.mu.Unlock()
	}
}

// ProvideDataset hands the loaded dataset to the session. It may be called
// once. The candidate list is not re-ranked until the next Search.
func (uc *EmojiSessionUseCase) ProvideDataset(ctx context.Context, emojis []entity.Emoji) error {
	uc.mu.Lock()
	if uc.loaded {
		uc.mu.Unlock()
		return ErrDatasetAlreadyProvided
	}
	uc.emojis = emojis
	uc.loaded = true
	state := uc.snapshotLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Int("entries", len(emojis)).Msg("dataset provided to session")
	uc.notify(state)
	return nil
}

// Search ranks the dataset against query and adopts the top candidate as
// the new selection.
func (uc *EmojiSessionUseCase) Search(ctx context.Context, query string) SessionState {
	uc.mu.Lock()
	uc.query = query
	uc.rankLocked()
	state := uc.snapshotLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Trace().
		Str("query", query).
		Int("candidates", len(state.Candidates)).
		Str("selected", state.Selection.Glyph).
		Msg("search ranked")

	uc.notify(state)
	return state
}

// Select makes an explicit pick. The candidate list is left as ranked.
func (uc *EmojiSessionUseCase) Select(ctx context.Context, sel entity.Selection) SessionState {
	uc.mu.Lock()
	uc.selection = sel
	state := uc.snapshotLocked()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("glyph", sel.Glyph).Str("label", sel.Label).Msg("emoji selected")
	uc.notify(state)
	return state
}

// State returns the current snapshot.
func (uc *EmojiSessionUseCase) State() SessionState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// Selection returns the current selection.
func (uc *EmojiSessionUseCase) Selection() entity.Selection {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selection
}

func (uc *EmojiSessionUseCase) rankLocked() {
	uc.candidates = search.Rank(uc.query, uc.emojis, uc.selection)
	uc.selection = search.Top(uc.candidates, uc.selection)
}

func (uc *EmojiSessionUseCase) snapshotLocked() SessionState {
	candidates := make([]entity.Candidate, len(uc.candidates))
	copy(candidates, uc.candidates)
	return SessionState{
		Query:      uc.query,
		Selection:  uc.selection,
		Candidates: candidates,
		Loaded:     uc.loaded,
	}
}

func (uc *EmojiSessionUseCase) notify(state SessionState) {
	uc.mu.Lock()
	observers := make([]SessionObserver, 0, len(uc.observers))
	for _, fn := range uc.observers {
		observers = append(observers, fn)
	}
	uc.mu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
