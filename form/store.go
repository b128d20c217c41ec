package form

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Option configures a Store.
type Option func(*Store)

// WithRules adds validation rules, evaluated in order; the first failing rule
// for a path wins.
func WithRules(rules ...Rule) Option {
	return func(s *Store) { s.rules = append(s.rules, rules...) }
}

// WithLogger sets the logger used for write failures and validation runs.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Store is an in-memory form-state container.
type Store struct {
	mu sync.RWMutex

	values  Doc
	errors  Doc
	touched Doc

	rules []Rule

	clock    uint64
	writes   map[string]uint64
	resetRev uint64

	err    error
	logger *slog.Logger
}

var _ Form = (*Store)(nil)

// New returns a store holding initial values.
func New(initial Doc, opts ...Option) (*Store, error) {
	values, err := ParseDoc(string(initial))
	if err != nil {
		return nil, err
	}
	s := &Store{
		values:  values,
		errors:  EmptyDoc,
		touched: EmptyDoc,
		writes:  make(map[string]uint64),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) Values(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Strings(s.values.Get(field))
}

// Revision returns the latest write counter affecting field: writes to the
// field itself, to a parent path, to a nested path, and resets.
func (s *Store) Revision(field string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rev := s.resetRev
	for path, r := range s.writes {
		if r > rev && pathsOverlap(path, field) {
			rev = r
		}
	}
	return rev
}

func (s *Store) SetValues(field string, values []string, validate bool) {
	if values == nil {
		values = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.values.Set(field, values)
	if err != nil {
		s.fail(err)
		return
	}
	s.values = next
	s.clock++
	s.writes[field] = s.clock
	if validate {
		s.validateLocked()
	}
}

func (s *Store) SetTouched(field string, touched bool, validate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.touched.Set(field, touched)
	if err != nil {
		s.fail(err)
		return
	}
	s.touched = next
	if validate {
		s.validateLocked()
	}
}

func (s *Store) SetError(field string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		next Doc
		err  error
	)
	if message == "" {
		next, err = s.errors.Delete(field)
	} else {
		next, err = s.errors.Set(field, message)
	}
	if err != nil {
		s.fail(err)
		return
	}
	s.errors = next
}

func (s *Store) Errors() Doc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors
}

func (s *Store) Touched() Doc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched
}

// ValuesDoc returns the whole values document.
func (s *Store) ValuesDoc() Doc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values
}

// Validate runs every rule against the current values and replaces the error
// document with the result.
func (s *Store) Validate() Doc {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.validateLocked()
	return s.errors
}

// Valid reports whether the error document is empty.
func (s *Store) Valid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(gjson.Parse(s.errors.String()).Map()) == 0
}

// Reset replaces all values and clears errors and touched markers. Every
// field observes a new revision.
func (s *Store) Reset(values Doc) error {
	next, err := ParseDoc(string(values))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = next
	s.errors = EmptyDoc
	s.touched = EmptyDoc
	s.clock++
	s.resetRev = s.clock
	clear(s.writes)
	return nil
}

// Err returns the first write failure, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) validateLocked() {
	errs := EmptyDoc
	failed := make(map[string]bool)
	for _, rule := range s.rules {
		if failed[rule.Path] || rule.Check == nil {
			continue
		}
		msg := rule.Check(s.values.Get(rule.Path))
		if msg == "" {
			continue
		}
		next, err := errs.Set(rule.Path, msg)
		if err != nil {
			s.fail(err)
			continue
		}
		errs = next
		failed[rule.Path] = true
	}
	s.errors = errs
	s.logger.Debug("form validated", "errors", len(failed))
}

func (s *Store) fail(err error) {
	if s.err == nil {
		s.err = err
	}
	s.logger.Error("form write failed", "error", err)
}

// pathsOverlap reports whether a and b name the same value or one is nested
// inside the other.
func pathsOverlap(a, b string) bool {
	if a == b {
		return true
	}
	return strings.HasPrefix(a, b+".") || strings.HasPrefix(b, a+".")
}
