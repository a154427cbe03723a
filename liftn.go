package frappe

// Arity-N signal combinators, written out by cmd/codegen.

func Lift2[T0, T1, R any](
	f func(T0, T1) R,
	s0 Signal[T0],
	s1 Signal[T1],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
		)
	})
}

func Lift3[T0, T1, T2, R any](
	f func(T0, T1, T2) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
		)
	})
}

func Lift4[T0, T1, T2, T3, R any](
	f func(T0, T1, T2, T3) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
	s3 Signal[T3],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
			s3.Sample(),
		)
	})
}

func Lift5[T0, T1, T2, T3, T4, R any](
	f func(T0, T1, T2, T3, T4) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
	s3 Signal[T3],
	s4 Signal[T4],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
			s3.Sample(),
			s4.Sample(),
		)
	})
}

func Lift6[T0, T1, T2, T3, T4, T5, R any](
	f func(T0, T1, T2, T3, T4, T5) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
	s3 Signal[T3],
	s4 Signal[T4],
	s5 Signal[T5],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
			s3.Sample(),
			s4.Sample(),
			s5.Sample(),
		)
	})
}

func Lift7[T0, T1, T2, T3, T4, T5, T6, R any](
	f func(T0, T1, T2, T3, T4, T5, T6) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
	s3 Signal[T3],
	s4 Signal[T4],
	s5 Signal[T5],
	s6 Signal[T6],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
			s3.Sample(),
			s4.Sample(),
			s5.Sample(),
			s6.Sample(),
		)
	})
}

func Lift8[T0, T1, T2, T3, T4, T5, T6, T7, R any](
	f func(T0, T1, T2, T3, T4, T5, T6, T7) R,
	s0 Signal[T0],
	s1 Signal[T1],
	s2 Signal[T2],
	s3 Signal[T3],
	s4 Signal[T4],
	s5 Signal[T5],
	s6 Signal[T6],
	s7 Signal[T7],
) Signal[R] {
	return FromFn(func() R {
		return f(
			s0.Sample(),
			s1.Sample(),
			s2.Sample(),
			s3.Sample(),
			s4.Sample(),
			s5.Sample(),
			s6.Sample(),
			s7.Sample(),
		)
	})
}
