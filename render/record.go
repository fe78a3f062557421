package render

import (
	"strconv"
	"strings"

	"github.com/variantkit/vcf-test-lib/types"
)

// FormatColumn pairs one FORMAT field key with its drawn value per sample,
// before missing-value collapsing.
type FormatColumn struct {
	Key     string
	Samples []types.FieldValue
}

// InfoToken renders one INFO entry: the bare key for a present flag,
// "key=v1,v2" otherwise. Callers skip values that are missing overall.
func InfoToken(key string, v types.FieldValue) string {
	if v.IsFlag() {
		return key
	}
	return key + "=" + v.Render()
}

// CollapseFormat drops every FORMAT field whose values are missing overall
// for all samples, and renders the rest. It returns the surviving keys and
// one value column per sample, aligned index-for-index with the keys.
func CollapseFormat(fields []FormatColumn, sampleCount int) (keys []string, samples [][]string) {
	samples = make([][]string, sampleCount)
	for _, field := range fields {
		allMissing := true
		for _, v := range field.Samples {
			if !v.Missing() {
				allMissing = false
				break
			}
		}
		if allMissing {
			continue
		}
		keys = append(keys, field.Key)
		for i, v := range field.Samples {
			samples[i] = append(samples[i], v.Render())
		}
	}
	return keys, samples
}

// RecordLine serializes one variant line: the eight mandatory columns, then
// the FORMAT column and one column per sample when the document has samples.
// FILTER is always "."; this generator never emits filter values.
func RecordLine(rec types.VariantRecord, hasSampleColumns bool) string {
	id := "."
	if rec.ID != nil {
		id = *rec.ID
	}
	qual := "."
	if rec.Qual != nil {
		qual = strconv.FormatFloat(float64(*rec.Qual), 'g', -1, 32)
	}

	cols := []string{
		rec.Contig,
		strconv.Itoa(rec.Pos),
		id,
		rec.Ref,
		join(",", rec.Alt),
		qual,
		".", // FILTER
		join(";", rec.Info),
	}
	if hasSampleColumns {
		cols = append(cols, join(":", rec.FormatKeys))
		for _, sample := range rec.SampleValues {
			cols = append(cols, join(":", sample))
		}
	}
	return strings.Join(cols, "\t") + "\n"
}

// Document concatenates the header block and every record line.
func Document(doc types.Document, source string) string {
	var b strings.Builder
	hb := HeaderBuilder{Source: source}
	b.WriteString(hb.Build([]string{doc.Contig}, doc.InfoFields, doc.FormatFields, doc.SampleIDs))
	hasSamples := len(doc.SampleIDs) > 0
	for _, rec := range doc.Records {
		b.WriteString(RecordLine(rec, hasSamples))
	}
	return b.String()
}

// join renders a list column, collapsing empty lists to ".".
func join(sep string, vals []string) string {
	if len(vals) == 0 {
		return "."
	}
	return strings.Join(vals, sep)
}
