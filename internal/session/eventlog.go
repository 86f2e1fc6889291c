package session

import (
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/gabapcia/web3lab/internal/units"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultEventLogSize is how many transfer entries the log keeps.
const DefaultEventLogSize = 20

// EventLogEntry is one observed transfer as shown to the user.
type EventLogEntry struct {
	Contract    common.Address `json:"contract"`
	From        common.Address `json:"from"`
	To          common.Address `json:"to"`
	Value       *big.Int       `json:"value"`
	Formatted   string         `json:"formatted"`
	BlockNumber uint64         `json:"blockNumber"`
	TxHash      common.Hash    `json:"txHash"`
	ReceivedAt  time.Time      `json:"receivedAt"`
}

// String renders the entry as a log line.
func (e EventLogEntry) String() string {
	formatted := e.Formatted
	if formatted == "" {
		formatted = units.Format(e.Value, 18)
	}
	return fmt.Sprintf("%s -> %s : %s 代币", e.From.Hex(), e.To.Hex(), formatted)
}

// EventLog is a bounded list of entries, most recent first.
type EventLog struct {
	mu       sync.RWMutex
	capacity int
	entries  []EventLogEntry
}

// NewEventLog creates a log holding at most capacity entries. A
// non-positive capacity falls back to DefaultEventLogSize.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventLogSize
	}
	return &EventLog{capacity: capacity, entries: make([]EventLogEntry, 0, capacity)}
}

// Add puts entry at the front, dropping the oldest entry when full.
func (l *EventLog) Add(entry EventLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) < l.capacity {
		l.entries = append(l.entries, EventLogEntry{})
	}
	copy(l.entries[1:], l.entries[:len(l.entries)-1])
	l.entries[0] = entry
}

// Entries returns a copy of the log, most recent first.
func (l *EventLog) Entries() []EventLogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]EventLogEntry(nil), l.entries...)
}

// Len returns how many entries the log holds.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Reset empties the log and keeps its capacity.
func (l *EventLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
}
