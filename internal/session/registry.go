package session

import "sync"

// State posisi percakapan sebuah chat
type State int

const (
	// StateIdle tidak ada percakapan berjalan
	StateIdle State = iota
	// StateAwaitingStockInput menunggu balasan "Nama Produk, Jumlah"
	StateAwaitingStockInput
)

// Registry pemetaan per-chat: flag mode AI dan state percakapan.
// Hanya hidup di memori proses; hilang saat restart.
type Registry struct {
	mu     sync.RWMutex
	aiMode map[int64]bool
	states map[int64]State
}

// NewRegistry membuat registry sesi kosong
func NewRegistry() *Registry {
	return &Registry{
		aiMode: make(map[int64]bool),
		states: make(map[int64]State),
	}
}

// SetAIMode menyalakan/mematikan mode AI untuk satu chat
func (r *Registry) SetAIMode(chatID int64, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if on {
		r.aiMode[chatID] = true
	} else {
		delete(r.aiMode, chatID)
	}
}

// AIMode status mode AI; chat yang belum pernah diset berarti false
func (r *Registry) AIMode(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.aiMode[chatID]
}

// SetState mengganti state percakapan satu chat
func (r *Registry) SetState(chatID int64, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state == StateIdle {
		delete(r.states, chatID)
	} else {
		r.states[chatID] = state
	}
}

// State state percakapan saat ini; default StateIdle
func (r *Registry) State(chatID int64) State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[chatID]
}
