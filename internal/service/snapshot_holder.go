package service

import (
	"sync"

	"github.com/nivethika-g1/SoundSense/internal/engine"
)

// SnapshotHolder publica el snapshot vigente para todos los servicios.
// Las lecturas toman el puntero y consultan sin locks (el snapshot es
// inmutable); un rebuild intercambia el puntero completo, así que una
// consulta en vuelo termina contra el snapshot viejo o recibe el nuevo,
// nunca un estado a medias.
type SnapshotHolder struct {
	mu   sync.RWMutex
	snap *engine.Snapshot
}

func NewSnapshotHolder(snap *engine.Snapshot) *SnapshotHolder {
	return &SnapshotHolder{snap: snap}
}

func (h *SnapshotHolder) Get() *engine.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

func (h *SnapshotHolder) Swap(snap *engine.Snapshot) {
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
}
