// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Error karşılaştırması string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Repository ve service katmanı bunları fmt.Errorf("%w: ...") ile sarmalayarak döner.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")

	// ErrMissingSection, snapshot'ta zorunlu bir üst seviye bölümün
	// (channels, users, teams) olmadığını bildirir. Bu bir programlama
	// hatasıdır — derivation'lar bu error ile panic atar, sessizce yutmaz.
	ErrMissingSection = errors.New("missing state section")
)
