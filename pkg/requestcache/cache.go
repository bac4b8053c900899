// Package requestcache deduplica leituras em andamento e recentes por chave.
//
// Cada chave tem no máximo uma chamada pendente. Quem chega enquanto ela está
// em curso espera o mesmo resultado; resultados mais novos que o TTL saem da
// memória. Falhas nunca ficam em cache.
package requestcache

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

// DefaultTTL é usado quando nenhuma TTL é informada
const DefaultTTL = 5 * time.Minute

// Options controla uma chamada a Do/Get
type Options struct {
	// TTL substitui a TTL padrão do cache para esta leitura
	TTL time.Duration
	// Force ignora qualquer entrada existente e sobrescreve com uma nova chamada
	Force bool
}

// Stats resume o conteúdo atual do cache
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Cached  int `json:"cached"`
}

type entry struct {
	done     chan struct{}
	value    any
	err      error
	resolved bool
	at       time.Time
}

type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	defaultTTL time.Duration
	now        func() time.Time
	logger     log.Logger
}

type Option func(*Cache)

// WithClock injeta o relógio usado para TTL e limpeza
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func WithLogger(l log.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

func New(defaultTTL time.Duration, opts ...Option) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	c := &Cache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do executa fn sob a chave informada respeitando deduplicação e TTL.
//
// fn roda desacoplada do cancelamento de ctx para que a desistência de um
// chamador não derrube a chamada compartilhada; ctx só limita a espera.
func (c *Cache) Do(ctx context.Context, key string, fn func(context.Context) (any, error), opts Options) (any, error) {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !opts.Force {
		if !e.resolved {
			c.mu.Unlock()
			c.logger.WithField("cache_key", key).Debug("requestcache: juntando-se a chamada em andamento")
			return c.wait(ctx, e)
		}
		if c.now().Sub(e.at) < ttl {
			value := e.value
			c.mu.Unlock()
			c.logger.WithField("cache_key", key).Debug("requestcache: hit")
			return value, nil
		}
	}

	e = &entry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	go c.run(context.WithoutCancel(ctx), key, e, fn)

	return c.wait(ctx, e)
}

func (c *Cache) run(ctx context.Context, key string, e *entry, fn func(context.Context) (any, error)) {
	var (
		value any
		err   error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("requestcache: panic em %q: %v", key, r)
			}
		}()
		value, err = fn(ctx)
	}()

	c.mu.Lock()
	e.value, e.err = value, err
	e.resolved = true
	e.at = c.now()
	if current, ok := c.entries[key]; ok && current == e && err != nil {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.WithField("cache_key", key).WithError(err).Debug("requestcache: chamada falhou, entrada removida")
	}

	close(e.done)
}

func (c *Cache) wait(ctx context.Context, e *entry) (any, error) {
	select {
	case <-e.done:
		return e.value, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Get é a versão tipada de Do
func Get[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error), opts Options) (T, error) {
	var zero T

	v, err := c.Do(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, opts)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, errors.Errorf("requestcache: chave %q contém %T, esperado %T", key, v, zero)
	}

	return typed, nil
}

// Invalidate remove a entrada da chave, pendente ou não
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePattern remove todas as chaves que casam com o padrão e retorna
// quantas foram removidas
func (c *Cache) InvalidatePattern(pattern *regexp.Regexp) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if pattern.MatchString(key) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}

// Cleanup remove entradas resolvidas mais antigas que a TTL padrão
func (c *Cache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if e.resolved && now.Sub(e.at) > c.defaultTTL {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{Total: len(c.entries)}
	for _, e := range c.entries {
		if e.resolved {
			s.Cached++
		} else {
			s.Pending++
		}
	}

	return s
}
