// Package cache — Generic in-memory TTL cache.
//
// TTLCache, belirli bir süre sonra süresi dolan kayıtları tutan
// thread-safe, generic bir cache yapısıdır.
//
// Kullanım alanı:
// - Restore edilen Store'ları kullanıcı başına tutmak. Aynı kullanıcı
//   tekrar istendiğinde snapshot DB'den okunup JSON decode edilmez ve
//   memoize edilmiş selector'lar aynı snapshot referansıyla hit verir.
//
// TTL (Time To Live) nedir?
// Her entry bir son kullanma zamanı taşır. Bu zaman geçtikten sonra
// entry okunamaz, cache miss olur. Süresi dolan entry'ler arka planda
// periyodik olarak map'ten silinir.
//
// Thread safety:
// sync.RWMutex ile korunur. Birden fazla goroutine aynı anda okuyabilir,
// yazma sırasında tüm erişim bloklanır.
package cache

import (
	"sync"
	"time"
)

// entry, cache'teki tek bir kayıt.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache, generic in-memory TTL cache.
//
//	c := cache.New[string, *store.Store](5*time.Minute, time.Minute)
//	c.Set("u1", st)
//	st, ok := c.Get("u1")
//
// ttl <= 0 ise cache devre dışıdır: Set hiçbir şey yazmaz.
type TTLCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	now     func() time.Time

	// stopCleanup: temizleme goroutine'ini durdurur; Close() kapatır.
	stopCleanup chan struct{}
	closeOnce   sync.Once
}

// Option, TTLCache ayarı.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock, süre hesabında kullanılan saati değiştirir (testler için).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New, yeni bir TTLCache oluşturur ve periyodik temizleme goroutine'ini başlatır.
//
// ttl: her entry'nin yaşam süresi (örn. SNAPSHOT_CACHE_TTL)
// cleanupInterval: süresi dolan entry'lerin ne sıklıkla silineceği
//
// Get her çağrıda süreyi kontrol eder, stale entry dönmez. Fiziksel silme
// ise periyodiktir; yoksa hiç tekrar istenmeyen kullanıcıların Store'ları
// map'te kalır. cleanupInterval <= 0 ise periyodik temizleme yapılmaz.
func New[K comparable, V any](ttl, cleanupInterval time.Duration, opts ...Option) *TTLCache[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	c := &TTLCache[K, V]{
		entries:     make(map[K]entry[V]),
		ttl:         ttl,
		now:         o.now,
		stopCleanup: make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					c.evictExpired()
				case <-c.stopCleanup:
					return
				}
			}
		}()
	}

	return c
}

// Get, key varsa ve süresi dolmamışsa (value, true) döner.
// Süresi dolan entry burada silinmez — RLock yeterli kalsın.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set, değeri TTL ile yazar.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Delete, key'i cache'ten siler.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len, cache'teki entry sayısı (süresi dolmuşlar dahil).
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Close, periyodik temizleme goroutine'ini durdurur. Birden fazla çağrılabilir.
func (c *TTLCache[K, V]) Close() {
	c.closeOnce.Do(func() { close(c.stopCleanup) })
}

func (c *TTLCache[K, V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
