package actuator

import (
	"hash/fnv"
	"sync"
)

// stripedLock serializes actuation per fleet without a lock per fleet id.
type stripedLock struct {
	locks []*sync.Mutex
}

func newStripedLock(capacity int) *stripedLock {
	if capacity <= 0 {
		panic("invalid striped lock capacity")
	}

	locks := make([]*sync.Mutex, capacity)
	for i := range locks {
		locks[i] = &sync.Mutex{}
	}
	return &stripedLock{locks: locks}
}

func (sl *stripedLock) getLock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sl.locks[int(h.Sum32())%len(sl.locks)]
}
