// Package jitter размывает интервалы повторных попыток случайной добавкой,
// чтобы переподключающиеся клиенты не выстраивались в одну волну.
package jitter

import (
	"math/rand/v2"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration добавляет к d случайную долю в диапазоне [0, factor*d].
func Duration(d time.Duration, factor float64) time.Duration {
	if factor <= 0 || d <= 0 {
		return d
	}

	return d + time.Duration(rand.Float64()*factor*float64(d))
}

// ExponentialBackoff возвращает задержку base*2^attempt, ограниченную max,
// с применённым джиттером. attempt нумеруется с нуля.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	backoff := base
	for ; attempt > 0 && backoff < max; attempt-- {
		backoff *= 2
	}
	if backoff > max {
		backoff = max
	}

	return Duration(backoff, factor)
}
