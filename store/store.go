package store

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Dispatcher, view katmanının store'a action göndermek için kullandığı interface.
// Çağıran taraf sonucu beklemez — fire-and-forget.
type Dispatcher interface {
	Dispatch(action Action) *State
}

// Listener, her yeni snapshot'tan sonra çağrılan callback.
type Listener func(state *State)

// Store, snapshot'ların tek mutasyon noktasıdır (Observer pattern).
//
// Dispatch bir Action alır, reducer yeni bir snapshot üretir ve
// kayıtlı listener'lar yeni snapshot ile çağrılır. Eski snapshot'lar
// hiçbir zaman değişmez; derivation'lar onları lock almadan okuyabilir.
//
// Copy-on-write nedir?
// Reducer mevcut map'i değiştirmez. Değişen section'ın kopyasını alır,
// sadece değişen map'i klonlar ve yeni bir State pointer'ı döner.
// Değişmeyen section'lar eski snapshot ile paylaşılır:
//
//	old.Users == new.Users           // kanal eklendi, kullanıcılar aynı
//	old.Channels != new.Channels     // kanal section'ı yeni
//
// Selector'ların memo cache'i bu pointer eşitliğine dayanır: input
// pointer'ı aynıysa hesaplama tekrar yapılmaz.
//
// Listener'lar lock dışında çağrılır; listener içinden Dispatch yapılabilir.
type Store struct {
	mu    sync.RWMutex
	state *State

	listeners map[uint64]Listener
	nextID    uint64

	// version: her gerçek değişiklikte bir artan sayaç.
	version atomic.Int64

	logger *zap.Logger
}

// New, verilen başlangıç snapshot'ı ile bir Store oluşturur.
// initial nil ise boş bir State kullanılır.
func New(initial *State, logger *zap.Logger) *Store {
	if initial == nil {
		initial = NewState()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:     initial,
		listeners: make(map[uint64]Listener),
		logger:    logger.Named("store"),
	}
}

// State, mevcut snapshot'ı döner.
func (s *Store) State() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// Version, store'un kaç kez değiştiğini döner.
func (s *Store) Version() int64 {
	return s.version.Load()
}

// Dispatch, action'ı mevcut snapshot'a uygular ve yeni snapshot'ı döner.
// Reducer aynı snapshot'ı dönerse (değişiklik yok) listener'lar çağrılmaz.
//
// Listener'lar lock dışında çağrılır — bir listener içinden tekrar
// Dispatch yapılabilir.
func (s *Store) Dispatch(action Action) *State {
	s.mu.Lock()
	prev := s.state
	next := action.reduce(prev)
	if next == prev {
		s.mu.Unlock()
		return prev
	}
	s.state = next
	version := s.version.Add(1)

	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	s.logger.Debug("action dispatched",
		zap.String("action", action.Type()),
		zap.Int64("version", version),
	)

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe, bir listener kaydeder. Dönen fonksiyon kaydı siler.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
