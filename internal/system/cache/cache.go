/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"sync"
	"time"

	"github.com/wso2/research-consent-ledger/internal/system/clock"
	"github.com/wso2/research-consent-ledger/internal/system/log"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache holds values for a fixed time-to-live.
type Cache[V any] struct {
	mutex sync.RWMutex
	items map[string]entry[V]
	ttl   time.Duration
	clock clock.Clock
}

// NewCache creates a cache whose entries expire ttl after they are stored.
func NewCache[V any](ttl time.Duration, clk clock.Clock) *Cache[V] {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Cache[V]{
		items: make(map[string]entry[V]),
		ttl:   ttl,
		clock: clk,
	}
}

// Set stores value under key.
func (c *Cache[V]) Set(key string, value V) {

	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// Get returns the live value for key.
func (c *Cache[V]) Get(key string) (V, bool) {

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, found := c.items[key]
	if !found || !c.clock.Now().Before(item.expiresAt) {
		var zero V
		return zero, false
	}
	return item.value, true
}

// GetOrLoad returns the cached value for key, calling load and caching its result on a miss.
// Failed loads are not cached.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {

	if value, ok := c.Get(key); ok {
		return value, nil
	}
	log.GetLogger().Debug("Cache miss.", log.String("key", key))
	value, err := load()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}
