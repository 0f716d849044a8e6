package reconcile

import "sort"

// Identity is a reconciled, cross-file gene family identity.
// Identities are allocated by State in strictly increasing order starting at 1.
type Identity uint64

// OptionalIdentity is an Identity that may be absent.
// The zero value is absent.
type OptionalIdentity struct {
	id      Identity
	present bool
}

// Some wraps a present identity.
func Some(id Identity) OptionalIdentity {
	return OptionalIdentity{id: id, present: true}
}

// None returns an absent identity.
func None() OptionalIdentity {
	return OptionalIdentity{}
}

// Get returns the identity and whether it is present.
func (o OptionalIdentity) Get() (Identity, bool) {
	return o.id, o.present
}

// IsPresent reports whether an identity is held.
func (o OptionalIdentity) IsPresent() bool {
	return o.present
}

// Member is one gene of a family, as listed in a single mapping file.
type Member struct {
	// GeneID is the organism-local gene (coding exon) identifier.
	GeneID string `json:"gene_id"`

	// Organism is the organism the gene belongs to.
	Organism string `json:"organism"`
}

// Key returns the gene identity table key for this member.
func (m Member) Key() GeneKey {
	return GeneKey{Organism: m.Organism, GeneID: m.GeneID}
}

// GeneKey identifies a gene across files.
type GeneKey struct {
	Organism string
	GeneID   string
}

// Grouping maps a file-local family id to its members in line order.
type Grouping map[string][]Member

// FamilyIDs returns the family ids in lexicographic order.
func (g Grouping) FamilyIDs() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Add appends a member to the family's list.
func (g Grouping) Add(familyID string, m Member) {
	g[familyID] = append(g[familyID], m)
}

// FamilySummary describes one miss-mapped family in a report.
type FamilySummary struct {
	// FamilyID is the file-local family id.
	FamilyID string `json:"family_id"`

	// GeneCount is the number of member lines, including genes seen for the first time.
	GeneCount int `json:"gene_count"`
}

// MagnitudeGroup lists the families sharing one miss-mapped gene count.
type MagnitudeGroup struct {
	// Magnitude is the number of genes disagreeing with the family's majority identity.
	Magnitude int `json:"magnitude"`

	// Families are listed in family id order.
	Families []FamilySummary `json:"families"`
}

// FileReport is the reconciliation outcome for one mapping file.
type FileReport struct {
	// File is the caller-supplied label of the mapping file.
	File string `json:"file"`

	// TotalFamilies is the number of distinct family ids in the file.
	TotalFamilies int `json:"total_families"`

	// InconsistentFamilies is the number of families whose genes carried
	// more than one previously resolved identity.
	InconsistentFamilies int `json:"inconsistent_families"`

	// Groups are ordered by descending magnitude.
	Groups []MagnitudeGroup `json:"groups"`
}

// HasMismatches reports whether any family in the file was inconsistent.
func (r *FileReport) HasMismatches() bool {
	return r.InconsistentFamilies > 0
}
