package memo

// Select1..Select6, sadece snapshot alan selector'lar üretir.
// Cache anahtarı input değerlerinin kendisidir.

func Select1[S, A, V any](
	a func(S) A,
	combine func(A) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av := a(s)
		return c.get([]any{av}, func() V { return combine(av) })
	}
}

func Select2[S, A, B, V any](
	a func(S) A,
	b func(S) B,
	combine func(A, B) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av, bv := a(s), b(s)
		return c.get([]any{av, bv}, func() V { return combine(av, bv) })
	}
}

func Select3[S, A, B, C, V any](
	a func(S) A,
	b func(S) B,
	cc func(S) C,
	combine func(A, B, C) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av, bv, cv := a(s), b(s), cc(s)
		return c.get([]any{av, bv, cv}, func() V { return combine(av, bv, cv) })
	}
}

func Select4[S, A, B, C, D, V any](
	a func(S) A,
	b func(S) B,
	cc func(S) C,
	d func(S) D,
	combine func(A, B, C, D) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av, bv, cv, dv := a(s), b(s), cc(s), d(s)
		return c.get([]any{av, bv, cv, dv}, func() V { return combine(av, bv, cv, dv) })
	}
}

func Select5[S, A, B, C, D, E, V any](
	a func(S) A,
	b func(S) B,
	cc func(S) C,
	d func(S) D,
	e func(S) E,
	combine func(A, B, C, D, E) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av, bv, cv, dv, ev := a(s), b(s), cc(s), d(s), e(s)
		return c.get([]any{av, bv, cv, dv, ev}, func() V { return combine(av, bv, cv, dv, ev) })
	}
}

func Select6[S, A, B, C, D, E, F, V any](
	a func(S) A,
	b func(S) B,
	cc func(S) C,
	d func(S) D,
	e func(S) E,
	f func(S) F,
	combine func(A, B, C, D, E, F) V,
	opts ...Option[V],
) func(S) V {
	c := newCell(opts)
	return func(s S) V {
		av, bv, cv, dv, ev, fv := a(s), b(s), cc(s), d(s), e(s), f(s)
		return c.get([]any{av, bv, cv, dv, ev, fv}, func() V { return combine(av, bv, cv, dv, ev, fv) })
	}
}

// SelectArg1..SelectArg4, snapshot'a ek olarak bir argüman (ör. takım ID'si)
// alan selector'lar üretir. Argüman da cache anahtarına girer; slot yine
// tektir — sadece son argüman hatırlanır.

func SelectArg1[S, P, A, V any](
	a func(S, P) A,
	combine func(P, A) V,
	opts ...Option[V],
) func(S, P) V {
	c := newCell(opts)
	return func(s S, p P) V {
		av := a(s, p)
		return c.get([]any{p, av}, func() V { return combine(p, av) })
	}
}

func SelectArg2[S, P, A, B, V any](
	a func(S, P) A,
	b func(S, P) B,
	combine func(P, A, B) V,
	opts ...Option[V],
) func(S, P) V {
	c := newCell(opts)
	return func(s S, p P) V {
		av, bv := a(s, p), b(s, p)
		return c.get([]any{p, av, bv}, func() V { return combine(p, av, bv) })
	}
}

func SelectArg3[S, P, A, B, C, V any](
	a func(S, P) A,
	b func(S, P) B,
	cc func(S, P) C,
	combine func(P, A, B, C) V,
	opts ...Option[V],
) func(S, P) V {
	c := newCell(opts)
	return func(s S, p P) V {
		av, bv, cv := a(s, p), b(s, p), cc(s, p)
		return c.get([]any{p, av, bv, cv}, func() V { return combine(p, av, bv, cv) })
	}
}

func SelectArg4[S, P, A, B, C, D, V any](
	a func(S, P) A,
	b func(S, P) B,
	cc func(S, P) C,
	d func(S, P) D,
	combine func(P, A, B, C, D) V,
	opts ...Option[V],
) func(S, P) V {
	c := newCell(opts)
	return func(s S, p P) V {
		av, bv, cv, dv := a(s, p), b(s, p), cc(s, p), d(s, p)
		return c.get([]any{p, av, bv, cv, dv}, func() V { return combine(p, av, bv, cv, dv) })
	}
}

// IgnoreArg, argümanı kullanmayan bir input fonksiyonunu SelectArg*
// ile kullanılabilir hale getirir.
func IgnoreArg[S, P, A any](f func(S) A) func(S, P) A {
	return func(s S, _ P) A { return f(s) }
}
