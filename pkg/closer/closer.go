// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при остановке приложения.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// Closer потокобезопасно накапливает функции закрытия. Close выполняется
// не более одного раза; при отмене контекста оставшиеся ресурсы
// закрываются принудительно в пределах forcedTimeout.
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	funcs         []Func
	forcedTimeout time.Duration
}

func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует функцию закрытия. Функции выполняются в порядке,
// обратном порядку регистрации.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close закрывает все зарегистрированные ресурсы (LIFO). Ошибки отдельных
// функций копятся и возвращаются одной ошибкой; отмена ctx переводит
// оставшиеся функции в принудительное параллельное закрытие.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			select {
			case <-ctx.Done():
				forced := c.forcedClose(funcs[:i+1])
				errs = append(errs, forced...)
				errs = append(errs, fmt.Errorf("shutdown interrupted, %d of %d closer(s) forced", i+1, len(funcs)))
				err = errors.Join(errs...)
				return
			case closeErr := <-runClose(ctx, funcs[i]):
				if closeErr != nil {
					errs = append(errs, closeErr)
				}
			}
		}

		err = errors.Join(errs...)
	})

	return err
}

// runClose выполняет функцию закрытия в отдельной горутине, чтобы Close
// мог реагировать на отмену контекста, не дожидаясь зависшего ресурса.
func runClose(ctx context.Context, f Func) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- f(ctx)
	}()

	return done
}

// forcedClose параллельно закрывает оставшиеся ресурсы с собственным таймаутом.
func (c *Closer) forcedClose(funcs []Func) []error {
	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, f := range funcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("forced close: %w", err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
