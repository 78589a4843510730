package settings

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/events"
	"github.com/rs/zerolog"
)

// EventEmitter publishes settings changes
type EventEmitter interface {
	EmitTyped(module string, data events.EventData)
}

// Service keeps settings in memory, starting from SettingDefaults
type Service struct {
	values  map[string]bool
	emitter EventEmitter
	mu      sync.RWMutex
	log     zerolog.Logger
}

// NewService creates a settings service. emitter may be nil.
func NewService(emitter EventEmitter, log zerolog.Logger) *Service {
	values := make(map[string]bool, len(SettingDefaults))
	for k, v := range SettingDefaults {
		values[k] = v
	}
	return &Service{
		values:  values,
		emitter: emitter,
		log:     log.With().Str("service", "settings").Logger(),
	}
}

// Get returns the value of key
func (s *Service) Get(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return false, fmt.Errorf("unknown setting: %s", key)
	}
	return v, nil
}

// GetAll returns a copy of every setting
func (s *Service) GetAll() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Set changes one setting and emits SETTINGS_CHANGED when the value differs
func (s *Service) Set(key string, value bool) error {
	s.mu.Lock()
	current, ok := s.values[key]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("unknown setting: %s", key)
	}
	s.values[key] = value
	s.mu.Unlock()

	if current == value {
		return nil
	}

	s.log.Info().Str("key", key).Bool("value", value).Msg("Setting updated")
	if s.emitter != nil {
		s.emitter.EmitTyped("settings", &events.SettingsChangedData{Key: key, Value: value})
	}
	return nil
}

// Widgets returns the optional widget toggles
func (s *Service) Widgets() domain.WidgetVisibility {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.WidgetVisibility{
		Volatility: s.values[KeyWidgetVolatility],
		Beta:       s.values[KeyWidgetBeta],
		RSI:        s.values[KeyWidgetRSI],
	}
}

// UpdateWidgets applies the supplied toggles and returns the result
func (s *Service) UpdateWidgets(update WidgetUpdate) (domain.WidgetVisibility, error) {
	changes := map[string]*bool{
		KeyWidgetVolatility: update.Volatility,
		KeyWidgetBeta:       update.Beta,
		KeyWidgetRSI:        update.RSI,
	}

	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if v := changes[key]; v != nil {
			if err := s.Set(key, *v); err != nil {
				return domain.WidgetVisibility{}, err
			}
		}
	}
	return s.Widgets(), nil
}
