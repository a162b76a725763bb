// Package access holds the process-lifetime department access gate.
// Flags are not persisted: every restart reopens all departments.
package access

import (
	"fmt"
	"sync"

	"github.com/maithili/projectvault/internal/app/models"
	"github.com/maithili/projectvault/internal/pkg/apperrors"
)

// Gate maps department codes to a visibility flag. Toggles are
// last-write-wins; the lock only guards map integrity.
type Gate struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewGate creates a gate with every department open
func NewGate() *Gate {
	flags := make(map[string]bool, len(models.DepartmentCodes))
	for _, code := range models.DepartmentCodes {
		flags[code] = true
	}
	return &Gate{flags: flags}
}

// All returns a copy of the current flag map
func (g *Gate) All() map[string]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]bool, len(g.flags))
	for code, granted := range g.flags {
		out[code] = granted
	}
	return out
}

// Toggle flips the flag for a department and returns the new value
// with a human-readable message.
func (g *Gate) Toggle(department string) (bool, string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	granted, ok := g.flags[department]
	if !ok {
		return false, "", apperrors.ErrUnknownDepartment
	}

	granted = !granted
	g.flags[department] = granted

	verb := "revoked"
	if granted {
		verb = "granted"
	}
	return granted, fmt.Sprintf("%s department access %s", department, verb), nil
}

// StudentViewAccess maps a roll number's embedded programme code to
// its department flag. Unknown programme codes never have access.
func (g *Gate) StudentViewAccess(roll string) (bool, string) {
	branch, ok := models.BranchFromRoll(roll)
	if !ok {
		return false, branch
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.flags[branch], branch
}
