package collection

import (
	"sort"
	"sync"
)

// TSD is a time-series datum held by the cache.
type TSD interface {
	GetTimestamp() int64
	HasLabels(map[string]string) bool
}

// TSDCache keeps the most recent data of a time series in a fixed-capacity
// ring, ordered by timestamp. Once full, inserting evicts the oldest datum.
type TSDCache struct {
	lock     sync.RWMutex
	data     []TSD
	capacity int
}

func NewTSDCache(capacity int) *TSDCache {
	if capacity <= 0 {
		panic("invalid TSDCache capacity")
	}
	return &TSDCache{
		data:     make([]TSD, 0, capacity),
		capacity: capacity,
	}
}

// Put inserts d keeping the cache sorted by timestamp. Out-of-order data
// older than everything retained is dropped once the cache is full.
func (c *TSDCache) Put(d TSD) {
	c.lock.Lock()
	defer c.lock.Unlock()

	pos := sort.Search(len(c.data), func(i int) bool {
		return c.data[i].GetTimestamp() > d.GetTimestamp()
	})
	c.data = append(c.data, nil)
	copy(c.data[pos+1:], c.data[pos:])
	c.data[pos] = d

	if len(c.data) > c.capacity {
		c.data = c.data[1:]
	}
}

// Query returns data with timestamps in [start, end) matching labels. The
// second return value reports whether the cache is known to cover the whole
// interval; when false the caller should fall back to the database.
func (c *TSDCache) Query(start, end int64, labels map[string]string) ([]TSD, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if len(c.data) == 0 {
		return []TSD{}, false
	}

	result := []TSD{}
	for _, d := range c.data {
		ts := d.GetTimestamp()
		if ts < start || ts >= end {
			continue
		}
		if d.HasLabels(labels) {
			result = append(result, d)
		}
	}

	covered := c.data[0].GetTimestamp() <= start
	return result, covered
}
