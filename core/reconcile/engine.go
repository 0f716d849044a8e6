package reconcile

import (
	"sort"

	"go.uber.org/zap"
)

// Reconcile resolves every family of one mapping file against the state and
// returns the file's report. Files must be passed in caller order; the first
// file establishes the baseline identities.
func Reconcile(file string, grouping Grouping, state *State) *FileReport {
	return state.Reconcile(file, grouping)
}

// Reconcile resolves every family of one mapping file and returns its report.
//
// Families are resolved in family id order because a gene listed under two
// families of the same file takes the identity of whichever is resolved first.
func (s *State) Reconcile(file string, grouping Grouping) *FileReport {
	report := &FileReport{
		File:          file,
		TotalFamilies: len(grouping),
	}
	byMagnitude := make(map[int][]FamilySummary)

	for _, familyID := range grouping.FamilyIDs() {
		members := grouping[familyID]
		log := s.logger.With(zap.String("file", file), zap.String("family", familyID))

		// Evidence is read before any assignment made for this family.
		prior := make([]OptionalIdentity, len(members))
		var evidence tally
		for i, m := range members {
			prior[i] = s.GeneIdentity(m.Organism, m.GeneID)
			if id, ok := prior[i].Get(); ok {
				evidence.add(id)
			}
		}

		identity, known := s.FamilyIdentity(familyID).Get()
		switch {
		case !known && evidence.total == 0:
			identity = s.allocate()
			s.families[familyID] = identity
			for _, m := range members {
				s.genes[m.Key()] = identity
			}
			log.Debug("Family and genes previously unmapped",
				zap.Uint64("identity", uint64(identity)),
				zap.Int("genes", len(members)),
			)
			continue
		case !known:
			identity, _, _ = evidence.top()
			s.families[familyID] = identity
			log.Debug("Family resolved from gene evidence",
				zap.Uint64("identity", uint64(identity)),
				zap.Int("evidence", evidence.total),
			)
		}

		for i, m := range members {
			prev, ok := prior[i].Get()
			if !ok {
				s.genes[m.Key()] = identity
				continue
			}
			if prev != identity {
				log.Debug("Gene miss-mapped",
					zap.String("gene", m.GeneID),
					zap.String("organism", m.Organism),
					zap.Uint64("previous", uint64(prev)),
					zap.Uint64("identity", uint64(identity)),
				)
			}
		}

		if evidence.distinct() > 1 {
			_, topCount, _ := evidence.top()
			magnitude := evidence.total - topCount
			report.InconsistentFamilies++
			byMagnitude[magnitude] = append(byMagnitude[magnitude], FamilySummary{
				FamilyID:  familyID,
				GeneCount: len(members),
			})
		}
	}

	report.Groups = make([]MagnitudeGroup, 0, len(byMagnitude))
	for magnitude, families := range byMagnitude {
		report.Groups = append(report.Groups, MagnitudeGroup{
			Magnitude: magnitude,
			Families:  families,
		})
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		return report.Groups[i].Magnitude > report.Groups[j].Magnitude
	})

	return report
}
