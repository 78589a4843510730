// Package holdings owns the canonical in-memory collection of portfolio assets.
package holdings

import (
	"fmt"
	"math"
	"sync"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventEmitter publishes store mutations
type EventEmitter interface {
	EmitTyped(module string, data events.EventData)
}

// Store is the single-writer holdings collection.
// Mutations are serialized by the mutex; List returns copies so readers always
// work on a consistent snapshot.
type Store struct {
	assets  []domain.Asset
	index   map[string]int // id -> position in assets
	emitter EventEmitter
	newID   func() string
	mu      sync.RWMutex
	log     zerolog.Logger
}

// NewStore creates an empty store. emitter may be nil.
func NewStore(emitter EventEmitter, log zerolog.Logger) *Store {
	return &Store{
		assets:  make([]domain.Asset, 0),
		index:   make(map[string]int),
		emitter: emitter,
		newID:   func() string { return uuid.New().String() },
		log:     log.With().Str("repository", "holdings_inmemory").Logger(),
	}
}

// Create validates input, assigns a fresh id and appends the asset
func (s *Store) Create(in domain.AssetInput) (domain.Asset, error) {
	if err := domain.ValidateInput(in); err != nil {
		return domain.Asset{}, err
	}

	s.mu.Lock()
	id := s.newID()
	for s.hasID(id) {
		id = s.newID()
	}
	asset := domain.Asset{
		ID:           id,
		Ticker:       domain.NormalizeTicker(in.Ticker),
		Name:         in.Name,
		Quantity:     in.Quantity,
		AvgPrice:     in.AvgPrice,
		CurrentPrice: in.CurrentPrice,
		Sector:       in.Sector,
		Geography:    in.Geography,
		RiskLevel:    in.RiskLevel,
	}
	if err := checkTotals(s.assets, -1, asset); err != nil {
		s.mu.Unlock()
		return domain.Asset{}, err
	}
	s.index[id] = len(s.assets)
	s.assets = append(s.assets, asset)
	s.mu.Unlock()

	s.log.Info().Str("id", id).Str("ticker", asset.Ticker).Msg("Asset created")
	s.emit(events.AssetCreated, asset)
	return asset, nil
}

// Update merges the supplied fields into the asset with the given id.
// The merged record is validated; nothing is stored if it is invalid.
func (s *Store) Update(id string, update domain.AssetUpdate) (domain.Asset, error) {
	if err := domain.ValidateUpdate(update); err != nil {
		return domain.Asset{}, err
	}

	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return domain.Asset{}, &domain.NotFoundError{ID: id}
	}
	asset := s.assets[pos]
	applyUpdate(&asset, update)
	if err := domain.ValidateAsset(asset); err != nil {
		s.mu.Unlock()
		return domain.Asset{}, err
	}
	if err := checkTotals(s.assets, pos, asset); err != nil {
		s.mu.Unlock()
		return domain.Asset{}, err
	}
	s.assets[pos] = asset
	s.mu.Unlock()

	s.log.Info().Str("id", id).Str("ticker", asset.Ticker).Msg("Asset updated")
	s.emit(events.AssetUpdated, asset)
	return asset, nil
}

// Delete removes the asset with the given id. Deleting twice fails.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	pos, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return &domain.NotFoundError{ID: id}
	}
	removed := s.assets[pos]
	s.assets = append(s.assets[:pos], s.assets[pos+1:]...)
	s.reindex()
	s.mu.Unlock()

	s.log.Info().Str("id", id).Str("ticker", removed.Ticker).Msg("Asset deleted")
	s.emit(events.AssetDeleted, removed)
	return nil
}

// Get returns a copy of the asset with the given id
func (s *Store) Get(id string) (domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return domain.Asset{}, &domain.NotFoundError{ID: id}
	}
	return s.assets[pos], nil
}

// List returns a snapshot of the collection in insertion order
func (s *Store) List() []domain.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Len returns the number of assets held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assets)
}

// Load replaces the collection with seed records, keeping their ids.
// Every record is validated and ids must be unique; on failure the store is unchanged.
func (s *Store) Load(assets []domain.Asset) error {
	loaded := make([]domain.Asset, 0, len(assets))
	index := make(map[string]int, len(assets))
	for i, a := range assets {
		if err := domain.ValidateAsset(a); err != nil {
			return fmt.Errorf("failed to load asset %d (%s): %w", i, a.Ticker, err)
		}
		if _, dup := index[a.ID]; dup {
			return fmt.Errorf("failed to load asset %d: %w", i,
				domain.NewValidationError("id", fmt.Sprintf("duplicate id %q", a.ID)))
		}
		a.Ticker = domain.NormalizeTicker(a.Ticker)
		index[a.ID] = len(loaded)
		loaded = append(loaded, a)
	}
	if err := checkTotals(loaded, -1, domain.Asset{}); err != nil {
		return fmt.Errorf("failed to load holdings: %w", err)
	}

	s.mu.Lock()
	s.assets = loaded
	s.index = index
	s.mu.Unlock()

	s.log.Info().Int("count", len(loaded)).Msg("Holdings loaded")
	return nil
}

// Tickers returns the distinct tickers currently held, in insertion order
func (s *Store) Tickers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.assets))
	tickers := make([]string, 0, len(s.assets))
	for _, a := range s.assets {
		if !seen[a.Ticker] {
			seen[a.Ticker] = true
			tickers = append(tickers, a.Ticker)
		}
	}
	return tickers
}

func (s *Store) hasID(id string) bool {
	_, exists := s.index[id]
	return exists
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.assets))
	for i, a := range s.assets {
		s.index[a.ID] = i
	}
}

func (s *Store) emit(kind events.EventType, asset domain.Asset) {
	if s.emitter == nil {
		return
	}
	s.emitter.EmitTyped("holdings", &events.AssetChangedData{
		Kind:   kind,
		ID:     asset.ID,
		Ticker: asset.Ticker,
	})
}

// checkTotals rejects candidate if the portfolio value or cost basis would overflow.
// replace is the position candidate overwrites, or -1 for an append.
func checkTotals(assets []domain.Asset, replace int, candidate domain.Asset) error {
	value := candidate.Quantity * candidate.CurrentPrice
	cost := candidate.Quantity * candidate.AvgPrice
	for i, a := range assets {
		if i == replace {
			continue
		}
		value += a.Quantity * a.CurrentPrice
		cost += a.Quantity * a.AvgPrice
	}
	if math.IsInf(value, 0) || math.IsNaN(value) || math.IsInf(cost, 0) || math.IsNaN(cost) {
		return domain.NewValidationError("quantity", "portfolio value must be a finite number")
	}
	return nil
}

func applyUpdate(asset *domain.Asset, u domain.AssetUpdate) {
	if u.Ticker != nil {
		asset.Ticker = domain.NormalizeTicker(*u.Ticker)
	}
	if u.Name != nil {
		asset.Name = *u.Name
	}
	if u.Quantity != nil {
		asset.Quantity = *u.Quantity
	}
	if u.AvgPrice != nil {
		asset.AvgPrice = *u.AvgPrice
	}
	if u.CurrentPrice != nil {
		asset.CurrentPrice = *u.CurrentPrice
	}
	if u.Sector != nil {
		asset.Sector = *u.Sector
	}
	if u.Geography != nil {
		asset.Geography = *u.Geography
	}
	if u.RiskLevel != nil {
		asset.RiskLevel = *u.RiskLevel
	}
}
