// Package reconcile infers cross-file gene family identities from shared genes.
//
// Orthology mapping files label the same biological family with unrelated ids.
// The engine assigns each family a canonical Identity and remembers, per gene,
// the identity it was resolved to. Later files are judged against that evidence,
// and every family whose genes disagree is reported.
//
// # Resolution
//
// Families of a file are visited in family id order. For each family:
//
//  1. Family and all of its genes unseen: a fresh identity is allocated and
//     assigned to the family and every gene.
//  2. Family unseen but some genes carry an identity: the most common gene
//     identity wins. Ties go to the identity encountered first while scanning
//     the family's genes in line order.
//  3. Family seen before: its identity is kept.
//
// Genes without an identity then take the family's identity. Genes that already
// carry a different identity are miss-mapped and keep their identity.
//
// # Reporting
//
// A family is inconsistent when its genes carried more than one identity. Its
// magnitude is the number of evidence-bearing genes outside the most common
// identity. FileReport groups inconsistent families by magnitude, largest first.
//
// # Usage
//
//	state := reconcile.NewState(logger)
//	for _, f := range files {
//	    report := state.Reconcile(f.Name, f.Grouping)
//	    fmt.Println(report.InconsistentFamilies)
//	}
package reconcile
