package loadable

import "context"

// Pair holds the combined result of two independent fetches.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Join2 combines two independent fetches into one. Both run concurrently;
// the results are combined at commit time, and the first rejection's cause
// wins on error.
func Join2[A, B any](fa Fetch[A], fb Fetch[B]) Fetch[Pair[A, B]] {
	return func(ctx context.Context) (Pair[A, B], error) {
		type resA struct {
			val A
			err error
		}
		type resB struct {
			val B
			err error
		}

		cha := make(chan resA, 1)
		chb := make(chan resB, 1)
		go func() {
			val, err := fa(ctx)
			cha <- resA{val, err}
		}()
		go func() {
			val, err := fb(ctx)
			chb <- resB{val, err}
		}()

		ra := <-cha
		rb := <-chb

		var combined Pair[A, B]
		if ra.err != nil {
			return combined, ra.err
		}
		if rb.err != nil {
			return combined, rb.err
		}
		combined.First = ra.val
		combined.Second = rb.val
		return combined, nil
	}
}

// Value adapts an already-known value into a Fetch (tests, defaults).
func Value[T any](v T) Fetch[T] {
	return func(context.Context) (T, error) { return v, nil }
}
