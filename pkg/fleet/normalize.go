package fleet

import (
	"strings"
	"unicode"
)

// Labcom parameter names carry reagent and kit suffixes that must not leak
// into the limit lookup key. "(HR TAB)" is stripped before "(HR)" so the
// shorter suffix cannot leave a dangling "TAB)" behind.
var parameterNameNoise = []string{
	" (LIQ)",
	" (EL.)",
	" (HR TAB)",
	" (LR)",
	" (HR)",
	" (POW)",
	". ORTHO",
	" [LIQ]",
}

type parameterRule struct {
	match     func(name string) bool
	canonical string
}

var parameterRules = []parameterRule{
	{func(n string) bool { return strings.HasPrefix(n, "PH-") || strings.HasPrefix(n, "PH (") }, "PH"},
	{func(n string) bool { return strings.Contains(n, "HARDN") && strings.Contains(n, "TOTAL") }, "TOTAL HARDNESS"},
	{func(n string) bool { return n == "TDS" }, "TOTAL DISSOLVED SOLIDS"},
	{func(n string) bool { return strings.Contains(n, "TURBIDITY") }, "TURBIDITY"},
	{func(n string) bool { return strings.Contains(n, "SULPHATE") }, "SULPHATE (SO4)"},
	{func(n string) bool { return strings.Contains(n, "SUSPENDED SOLIDS") }, "TOTAL SUSPENDED SOLIDS"},
	{func(n string) bool { return strings.Contains(n, "ALKALINITY") && hasIsolatedToken(n, "M") }, "ALKALINITY M"},
	{func(n string) bool { return strings.Contains(n, "ALKALINITY") && hasIsolatedToken(n, "P") }, "ALKALINITY P"},
	{func(n string) bool { return strings.Contains(n, "CHLORINE") && strings.Contains(n, "FREE") }, "FREE CHLORINE"},
	{func(n string) bool { return strings.Contains(n, "CHLORINE") && strings.Contains(n, "TOTAL") }, "TOTAL CHLORINE"},
	{func(n string) bool { return strings.Contains(n, "CHLORINE") && strings.Contains(n, "COMBINED") }, "COMBINED CHLORINE"},
	{func(n string) bool { return strings.Contains(n, "IRON") && !strings.Contains(n, "OIL") }, "IRON (FE)"},
	{func(n string) bool { return strings.Contains(n, "NICKEL") }, "NICKEL (NI)"},
	{func(n string) bool { return strings.Contains(n, "ZINC") }, "ZINC (ZN)"},
	{func(n string) bool { return strings.Contains(n, "COPPER") }, "COPPER (CU)"},
	{func(n string) bool { return strings.Contains(n, "CHLORIDE") }, "CHLORIDE"},
	{func(n string) bool { return strings.Contains(n, "PHOSPHATE") }, "PHOSPHATE"},
	{func(n string) bool { return strings.Contains(n, "DEHA") }, "DEHA"},
	{func(n string) bool { return strings.Contains(n, "HYDRAZINE") }, "HYDRAZINE"},
	{func(n string) bool { return strings.Contains(n, "NITRITE") }, "NITRITE"},
	{func(n string) bool { return strings.Contains(n, "COD") }, "COD"},
	{func(n string) bool { return strings.Contains(n, "BOD") }, "BOD"},
}

// hasIsolatedToken reports whether token appears in name as a standalone
// word, with word boundaries at any non-alphanumeric rune. "M-Alkalinity"
// contains an isolated "M", "AMMONIA" does not.
func hasIsolatedToken(name, token string) bool {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, field := range fields {
		if field == token {
			return true
		}
	}
	return false
}

// NormalizeParameterName collapses vendor spellings of the same chemical
// parameter onto the canonical name used by the limits table. Names no
// rule claims fall through uppercased and trimmed.
func NormalizeParameterName(raw string) string {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, noise := range parameterNameNoise {
		name = strings.ReplaceAll(name, noise, "")
	}
	name = strings.TrimSpace(name)
	for _, rule := range parameterRules {
		if rule.match(name) {
			return rule.canonical
		}
	}
	return name
}
