package types

import "strings"

// Reserved key tables from VCF 4.3, tables 1 and 2. Generated fields must
// avoid these keys because a drawn Type/Number pair would usually contradict
// the reserved definition.

var reservedInfoKeys = []string{
	"AA",
	"AC",
	"AD",
	"ADF",
	"ADR",
	"AF",
	"AN",
	"BQ",
	"CIGAR",
	"DB",
	"DP",
	"END",
	"H2",
	"H3",
	"MQ",
	"MQ0",
	"NS",
	"SB",
	"SOMATIC",
	"VALIDATED",
	"1000G",
}

var reservedFormatKeys = []string{
	"AD",
	"ADF",
	"ADR",
	"DP",
	"EC",
	"FT",
	"GL",
	"GP",
	"GQ",
	"GT",
	"HQ",
	"MQ",
	"PL",
	"PP",
	"PQ",
	"PS",
}

// ReservedKeys returns the reserved key table for a category. Unknown
// categories have no reserved keys.
func ReservedKeys(category FieldCategory) []string {
	switch category {
	case CategoryInfo:
		return reservedInfoKeys
	case CategoryFormat:
		return reservedFormatKeys
	}
	return nil
}

// IsReservedKey reports whether key may not be used for a generated field of
// the given category. Matching is case-insensitive. "id" is additionally
// reserved for INFO since it collides with the variant ID column downstream.
func IsReservedKey(category FieldCategory, key string) bool {
	if category == CategoryInfo && strings.EqualFold(key, "id") {
		return true
	}
	for _, reserved := range ReservedKeys(category) {
		if strings.EqualFold(key, reserved) {
			return true
		}
	}
	return false
}
