package tendermintlightclient

import "sync"

type chunkSessionKey struct {
	Submitter [32]byte
	Height    uint64
}

type chunkKey struct {
	chunkSessionKey
	Index uint8
}

// MemStore is an in-process reference implementation of Store, used by
// tests and by the in-process relayer harness. A size-bounded on-chain VM
// backs the same interface with PDAs/accounts instead.
type MemStore struct {
	mu         sync.Mutex
	signatures map[[32]byte]bool
	chunks     map[chunkKey][]byte
	metadata   map[chunkSessionKey]ChunkMetadata
}

// NewMemStore builds an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		signatures: make(map[[32]byte]bool),
		chunks:     make(map[chunkKey][]byte),
		metadata:   make(map[chunkSessionKey]ChunkMetadata),
	}
}

func (m *MemStore) MarkSignature(key [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signatures[key] = true
	return nil
}

func (m *MemStore) HasSignature(key [32]byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signatures[key]
}

func (m *MemStore) PutChunk(submitter [32]byte, height uint64, index uint8, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.chunks[chunkKey{chunkSessionKey{submitter, height}, index}] = buf
	return nil
}

func (m *MemStore) GetChunk(submitter [32]byte, height uint64, index uint8) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.chunks[chunkKey{chunkSessionKey{submitter, height}, index}]
	return data, ok
}

func (m *MemStore) PutMetadata(submitter [32]byte, height uint64, meta ChunkMetadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[chunkSessionKey{submitter, height}] = meta
	return nil
}

func (m *MemStore) GetMetadata(submitter [32]byte, height uint64) (ChunkMetadata, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.metadata[chunkSessionKey{submitter, height}]
	return meta, ok
}

func (m *MemStore) DeleteUploadSession(submitter [32]byte, height uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := chunkSessionKey{submitter, height}
	meta, ok := m.metadata[key]
	if !ok {
		return nil
	}
	for i := uint8(0); i < meta.TotalChunks; i++ {
		delete(m.chunks, chunkKey{key, i})
	}
	delete(m.metadata, key)
	return nil
}
