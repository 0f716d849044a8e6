package reconcile

import "go.uber.org/zap"

// State holds the accumulated evidence of a reconciliation run.
//
// A State is created empty at the start of a run and threaded through every
// Reconcile call, in file order. It is never reset between files, so each file
// is judged against everything observed before it. A State is not safe for
// concurrent use; a run owns it exclusively.
type State struct {
	// families maps a raw family id to the identity it was resolved to.
	families map[string]Identity

	// genes maps a gene to the identity it was last resolved to.
	genes map[GeneKey]Identity

	// last is the most recently allocated identity; zero means none yet.
	last Identity

	logger *zap.Logger
}

// NewState creates an empty reconciliation state.
// A nil logger disables engine logging.
func NewState(logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		families: make(map[string]Identity),
		genes:    make(map[GeneKey]Identity),
		logger:   logger,
	}
}

// FamilyIdentity returns the identity a family id was resolved to, if any.
func (s *State) FamilyIdentity(familyID string) OptionalIdentity {
	if id, ok := s.families[familyID]; ok {
		return Some(id)
	}
	return None()
}

// GeneIdentity returns the identity a gene was last resolved to, if any.
func (s *State) GeneIdentity(organism, geneID string) OptionalIdentity {
	if id, ok := s.genes[GeneKey{Organism: organism, GeneID: geneID}]; ok {
		return Some(id)
	}
	return None()
}

// FamilyCount returns the number of family ids with a resolved identity.
func (s *State) FamilyCount() int {
	return len(s.families)
}

// GeneCount returns the number of genes with a resolved identity.
func (s *State) GeneCount() int {
	return len(s.genes)
}

// Allocated returns the number of identities allocated so far.
func (s *State) Allocated() int {
	return int(s.last)
}

func (s *State) allocate() Identity {
	s.last++
	return s.last
}
