package settings

import "go.trai.ch/weave/internal/core/ports"

// TreeScope holds the state shared by all builds of one build tree.
// It is created when initialization of a tree starts and dropped when it ends.
type TreeScope struct {
	Slot   *Slot
	Caches ports.CacheConfigurationService
}

// NewTreeScope creates the scope of a new build tree with an empty slot.
func NewTreeScope(caches ports.CacheConfigurationService) *TreeScope {
	return &TreeScope{
		Slot:   NewSlot(),
		Caches: caches,
	}
}
