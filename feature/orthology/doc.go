// Package orthology checks gene family consistency across orthology mapping files.
//
// Mapping files produced for different phylogenetic splits label the same gene
// families differently. This package reads such files, hands their groupings to
// the core/reconcile engine in caller order, and reports, per file, the families
// whose genes were mapped differently by earlier files.
//
// # Input
//
// A mapping file is tab separated with a header line. Columns 1, 3 and 4
// (zero-indexed) hold the family id, the gene id and the organism. Lines with
// fewer columns are skipped. Files are read from the local filesystem or, for
// "s3://bucket/key" paths, from object storage.
//
// # Output
//
// WriteReport renders the text report of one file; WriteJSON renders a whole
// run. Finished runs may be archived to MySQL (History) and published to object
// storage (Service.PublishReport).
//
// # HTTP Endpoints
//
//   - POST /orthology/check : Reconciles uploaded files (multipart field "files").
//   - GET /orthology/runs : Lists archived runs.
package orthology
