// Package ledger implements the expense ledger: record CRUD, aggregation and
// monthly budget checks over a persisted Ledger.
//
// Every mutation is a full read-modify-write cycle against the backend. There
// is no locking: two processes writing at the same time race and the last
// writer wins.
package ledger

import (
	"io"

	"github.com/theirongolddev/spend/internal/model"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Backend persists the whole ledger. Save must replace the previous state atomically.
type Backend interface {
	Exists() (bool, error)
	Load() (*model.Ledger, error)
	Save(l *model.Ledger) error
	Location() string
}

// Store exposes ledger operations over a Backend.
type Store struct {
	backend Backend
	clock   Clock
	log     *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the system clock.
func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger sets the logger used for debug and repair messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, clock: SystemClock}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New()
		s.log.SetOutput(io.Discard)
	}
	return s
}

// Location returns where the ledger is persisted.
func (s *Store) Location() string {
	return s.backend.Location()
}

// Initialize creates an empty ledger if none is persisted. It never overwrites.
func (s *Store) Initialize() error {
	ok, err := s.backend.Exists()
	if err != nil {
		return ioErr("checking ledger", err)
	}
	if ok {
		return nil
	}
	s.log.WithField("location", s.backend.Location()).Debug("creating empty ledger")
	if err := s.backend.Save(model.NewLedger()); err != nil {
		return ioErr("creating ledger", err)
	}
	return nil
}

// load reads the ledger, treating a missing one as empty, and repairs the id counter.
func (s *Store) load() (*model.Ledger, error) {
	ok, err := s.backend.Exists()
	if err != nil {
		return nil, ioErr("checking ledger", err)
	}
	if !ok {
		return model.NewLedger(), nil
	}
	l, err := s.backend.Load()
	if err != nil {
		return nil, ioErr("reading ledger", err)
	}
	if l.Budgets == nil {
		l.Budgets = make(map[model.YearMonth]decimal.Decimal)
	}
	if maxID := l.MaxID(); l.NextID <= maxID {
		s.log.WithFields(log.Fields{
			"next_id": l.NextID,
			"max_id":  maxID,
		}).Warn("ledger id counter behind existing ids, repairing")
		l.NextID = maxID + 1
	}
	s.log.WithFields(log.Fields{
		"expenses": len(l.Expenses),
		"budgets":  len(l.Budgets),
		"next_id":  l.NextID,
	}).Debug("ledger loaded")
	return l, nil
}

func (s *Store) save(l *model.Ledger) error {
	if err := s.backend.Save(l); err != nil {
		return ioErr("writing ledger", err)
	}
	s.log.WithFields(log.Fields{
		"expenses": len(l.Expenses),
		"next_id":  l.NextID,
	}).Debug("ledger saved")
	return nil
}
