// Package memo, reselect tarzı memoize edilmiş selector'lar üretir.
//
// Bir selector iki parçadan oluşur:
//   - input fonksiyonları: snapshot'tan okunan path'leri (map, slice, pointer, scalar) seçer
//   - combine fonksiyonu: input değerlerinden view değerini hesaplayan saf fonksiyon
//
// Her üretilen fonksiyon tek slotluk ("son çağrı") bir cache taşır. Input
// değerlerinin hepsi önceki çağrıdakilerle referans olarak aynıysa combine
// çalışmaz ve önceki sonuç (aynı referans) döner.
//
// Kullanım:
//
//	getNames := memo.Select2(getChannels, getCurrentTeamIDs,
//	    func(channels map[string]*models.Channel, ids []string) []string { ... })
//	names := getNames(state)
//
// Tek slot bilinçli bir sınırlamadır: aynı selector farklı argümanlarla
// dönüşümlü çağrılırsa her çağrı yeniden hesaplar. Her çağrı noktasına
// ayrı cache gerekiyorsa factory ("Make...") fonksiyonlarıyla yeni bir
// selector örneği üretilir.
package memo

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Stats, bir veya birden fazla selector'ın hit/miss sayaçları.
type Stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (s *Stats) Hits() int64   { return s.hits.Load() }
func (s *Stats) Misses() int64 { return s.misses.Load() }

// Option, selector davranışını değiştirir.
type Option[V any] func(*options[V])

type options[V any] struct {
	resultEqual func(prev, next V) bool
	stats       *Stats
}

// WithResultEqual, yeniden hesaplanan sonuç öncekine eşitse önceki referansın
// dönmesini sağlar. ID listeleri ve isim map'leri gibi, input'u sık değişen
// ama sonucu nadiren değişen selector'lar için kullanılır.
func WithResultEqual[V any](eq func(prev, next V) bool) Option[V] {
	return func(o *options[V]) { o.resultEqual = eq }
}

// WithStats, hit/miss sayaçlarını verilen Stats'a yazar.
func WithStats[V any](s *Stats) Option[V] {
	return func(o *options[V]) { o.stats = s }
}

// cell, tek slotluk cache.
//
// Mutex, aynı selector'ın birden fazla goroutine'den çağrılmasına karşı
// koruma sağlar. Hesaplama lock altında yapılır — aynı anda tek yazıcı.
type cell[V any] struct {
	mu      sync.Mutex
	opts    options[V]
	valid   bool
	lastKey []any
	last    V
}

func newCell[V any](opts []Option[V]) *cell[V] {
	c := &cell[V]{}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

func (c *cell[V]) get(key []any, compute func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && sameKey(c.lastKey, key) {
		if c.opts.stats != nil {
			c.opts.stats.hits.Add(1)
		}
		return c.last
	}
	if c.opts.stats != nil {
		c.opts.stats.misses.Add(1)
	}

	v := compute()
	if c.valid && c.opts.resultEqual != nil && c.opts.resultEqual(c.last, v) {
		v = c.last
	}

	c.lastKey = key
	c.last = v
	c.valid = true
	return v
}

func sameKey(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !Identical(prev[i], next[i]) {
			return false
		}
	}
	return true
}

// Identical, iki değerin referans olarak aynı olup olmadığını döner.
//
//   - map, pointer, chan: aynı adres
//   - slice: aynı backing array başlangıcı ve aynı uzunluk
//   - string, sayı, bool ve karşılaştırılabilir struct'lar: ==
//   - func ve karşılaştırılamayan değerler: her zaman "değişti"
//
// Referans eşitliği neden yeterli?
// Store copy-on-write çalışır: bir map'in içeriği değiştiğinde map'in
// kendisi de yeni bir map olur. Bu yüzden içeriği tek tek karşılaştırmaya
// gerek yoktur; aynı adres, aynı içerik demektir. Tersi doğru değildir:
// içeriği aynı olan yeni bir map "değişti" sayılır ve combine tekrar
// çalışır (bunu WithResultEqual telafi eder).
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}

	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
