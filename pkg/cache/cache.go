package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTTL é o tempo de vida aplicado quando o chamador não informa um TTL.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value     any
	createdAt time.Time
	expiresAt time.Time
}

// Cache é um cache em memória com expiração por entrada. A expiração é
// preguiçosa: a leitura de uma chave vencida a remove e reporta ausência.
// Todas as operações são serializadas por mutex, já que a leitura faz
// read-then-delete e o servidor HTTP atende requisições em paralelo.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	defaultTTL time.Duration

	now func() time.Time // substituível em testes
}

// New cria um cache vazio. ttl <= 0 usa o DefaultTTL do processo.
func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Cache{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get retorna o valor da chave enquanto válido. Entradas vencidas são
// removidas na hora e tratadas como ausentes.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		logrus.Debugf("[Cache] Entrada expirada: %s", key)
		return nil, false
	}

	return e.value, true
}

// Set armazena o valor com expiração now+ttl, sobrescrevendo qualquer entrada
// anterior da chave. ttl <= 0 usa o TTL padrão.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = entry{
		value:     value,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

// Clear remove todas as entradas imediatamente.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	logrus.Debug("[Cache] Cache limpo")
}

// ClearPrefix remove as entradas cuja chave começa com o prefixo e retorna
// quantas foram removidas. Usado pelos endpoints de reload por dataset.
func (c *Cache) ClearPrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// ClearExpired remove apenas as entradas vencidas e retorna quantas foram
// removidas. Chamada oportunisticamente pelo job de manutenção.
func (c *Cache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		logrus.Debugf("[Cache] Removidas %d entradas expiradas", removed)
	}
	return removed
}

// Len retorna o número de entradas armazenadas, incluindo as vencidas ainda
// não varridas.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
