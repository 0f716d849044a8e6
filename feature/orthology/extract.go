package orthology

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"orth-check/core/reconcile"
)

// Column positions of a tab separated mapping line.
const (
	familyColumn   = 1
	geneColumn     = 3
	organismColumn = 4
	minColumns     = organismColumn + 1
)

// GeneRecord is one parsed mapping line.
type GeneRecord struct {
	FamilyID string
	GeneID   string
	Organism string
}

// ParseLine extracts the family, gene and organism columns of a mapping line.
// Lines with too few columns are rejected without error.
func ParseLine(line string) (GeneRecord, bool) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, "\t")
	if len(fields) < minColumns {
		return GeneRecord{}, false
	}
	return GeneRecord{
		FamilyID: fields[familyColumn],
		GeneID:   fields[geneColumn],
		Organism: fields[organismColumn],
	}, true
}

// GroupLines builds the grouping of one file's lines. The first line is a header.
func GroupLines(lines []string) reconcile.Grouping {
	grouping := make(reconcile.Grouping)
	for i, line := range lines {
		if i > 0 {
			addLine(grouping, line)
		}
	}
	return grouping
}

// ReadGrouping streams a mapping file and builds its grouping.
// Lines may be of any length. Only read failures are returned; malformed
// lines are skipped.
func ReadGrouping(r io.Reader) (reconcile.Grouping, error) {
	grouping := make(reconcile.Grouping)
	br := bufio.NewReader(r)

	for header := true; ; header = false {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read mapping lines: %w", err)
		}
		if !header && line != "" {
			addLine(grouping, line)
		}
		if err != nil {
			return grouping, nil
		}
	}
}

func addLine(grouping reconcile.Grouping, line string) {
	if rec, ok := ParseLine(line); ok {
		grouping.Add(rec.FamilyID, reconcile.Member{GeneID: rec.GeneID, Organism: rec.Organism})
	}
}
