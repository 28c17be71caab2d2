package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownFlag is returned when a ledger flag id is not registered.
var ErrUnknownFlag = errors.New("unknown ledger flag")

// Flag is the semantic role of a ledger entry, interpreted by the state layer.
type Flag struct {
	ID   uint16 `json:"id"`
	Name string `json:"name"`
}

func (f Flag) String() string {
	return fmt.Sprintf("%s(%d)", f.Name, f.ID)
}

// FlagSource resolves ledger flags by their wire id.
type FlagSource interface {
	Get(id uint16) (Flag, error)
}

// Flags is a registry of ledger flags. It is safe for concurrent use.
type Flags struct {
	mu    sync.RWMutex
	flags map[uint16]Flag
}

// NewFlags returns a registry holding the given flags.
func NewFlags(flags ...Flag) *Flags {
	f := &Flags{flags: make(map[uint16]Flag, len(flags))}
	for _, flag := range flags {
		f.flags[flag.ID] = flag
	}
	return f
}

// Register adds a flag. Registering the same id twice with a different name fails.
func (f *Flags) Register(flag Flag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.flags[flag.ID]; ok && existing != flag {
		return fmt.Errorf("ledger flag %d already registered as %q", flag.ID, existing.Name)
	}
	f.flags[flag.ID] = flag
	return nil
}

// Get returns the flag with the given id.
func (f *Flags) Get(id uint16) (Flag, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	flag, ok := f.flags[id]
	if !ok {
		return Flag{}, fmt.Errorf("%w: %d", ErrUnknownFlag, id)
	}
	return flag, nil
}

// All returns the registered flags ordered by id.
func (f *Flags) All() []Flag {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Flag, 0, len(f.flags))
	for _, flag := range f.flags {
		out = append(out, flag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
