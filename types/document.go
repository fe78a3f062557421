package types

// VariantRecord is one serializable variant line. Info holds fully rendered
// tokens ("key" or "key=v1,v2"); FormatKeys holds the FORMAT keys that
// survived missing-value collapsing, and SampleValues holds one rendered
// value column per sample, aligned to FormatKeys.
type VariantRecord struct {
	Contig       string
	Pos          int
	ID           *string
	Ref          string
	Alt          []string
	Qual         *float32
	Info         []string
	FormatKeys   []string
	SampleValues [][]string
}

// Document is one fully drawn VCF document before serialization.
// All variants share a single contig.
type Document struct {
	Contig       string
	InfoFields   []Field
	FormatFields []FormatFieldSpec
	SampleIDs    []string
	Records      []VariantRecord
}
