package orthology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"orth-check/core/reconcile"
)

// WriteReport writes the human-readable report of one mapping file.
func WriteReport(w io.Writer, r *reconcile.FileReport) error {
	ew := &errWriter{w: w}
	ew.printf("Orthology mapping file %s contained %d gene families (out of %d), where at least one gene was mapped, differently, from previously observed orthology mapping files.\n",
		r.File, r.InconsistentFamilies, r.TotalFamilies)

	if len(r.Groups) == 0 {
		return ew.err
	}

	ew.printf("Among miss-mapped gene families, there were\n")
	for _, g := range r.Groups {
		ew.printf("\t%d gene families have %d miss-mapped genes. List of these families\n", len(g.Families), g.Magnitude)
		for _, f := range g.Families {
			ew.printf("\t\t%s (out of %d)\n", f.FamilyID, f.GeneCount)
		}
	}
	return ew.err
}

// RenderReports renders the reports of a run as one text document.
func RenderReports(reports []*reconcile.FileReport) []byte {
	var buf bytes.Buffer
	for _, r := range reports {
		// Writes to a bytes.Buffer cannot fail.
		_ = WriteReport(&buf, r)
	}
	return buf.Bytes()
}

// WriteJSON writes a run summary as indented JSON.
func WriteJSON(w io.Writer, summary *RunSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
