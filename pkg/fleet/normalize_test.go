package fleet

import "testing"

func TestNormalizeParameterName(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"pH", "PH"},
		{"pH-Value (HR)", "PH"},
		{"pH (liq)", "PH"},
		{"Hardness, total (CaCO3)", "TOTAL HARDNESS"},
		{"Total Hardness", "TOTAL HARDNESS"},
		{"TDS", "TOTAL DISSOLVED SOLIDS"},
		{"Turbidity (EL.)", "TURBIDITY"},
		{"Sulphate", "SULPHATE (SO4)"},
		{"Suspended Solids", "TOTAL SUSPENDED SOLIDS"},
		{"M-Alkalinity", "ALKALINITY M"},
		{"Alkalinity M (HR tab)", "ALKALINITY M"},
		{"P-Alkalinity", "ALKALINITY P"},
		{"Free Chlorine (liq)", "FREE CHLORINE"},
		{"Chlorine, total", "TOTAL CHLORINE"},
		{"Combined Chlorine", "COMBINED CHLORINE"},
		{"Iron (LR)", "IRON (FE)"},
		{"Nickel", "NICKEL (NI)"},
		{"Zinc", "ZINC (ZN)"},
		{"Copper (pow)", "COPPER (CU)"},
		{"Chloride", "CHLORIDE"},
		{"Phosphate. Ortho", "PHOSPHATE"},
		{"DEHA [liq]", "DEHA"},
		{"Hydrazine", "HYDRAZINE"},
		{"Nitrite", "NITRITE"},
		{"COD", "COD"},
		{"BOD", "BOD"},
	}

	for _, c := range cases {
		got := NormalizeParameterName(c.raw)
		if got != c.expected {
			t.Errorf("NormalizeParameterName(%q) = %q, want %q", c.raw, got, c.expected)
		}
	}
}

func TestNormalizeParameterNameFallthrough(t *testing.T) {
	// Names no rule claims come back uppercased and trimmed, nothing more
	cases := []struct {
		raw      string
		expected string
	}{
		{"  Conductivity ", "CONDUCTIVITY"},
		{"E. coli", "E. COLI"},
		{"Chlorine Dioxide", "CHLORINE DIOXIDE"},
		{"Total Alkalinity", "TOTAL ALKALINITY"},
		{"Iron-in-Oil", "IRON-IN-OIL"},
	}

	for _, c := range cases {
		got := NormalizeParameterName(c.raw)
		if got != c.expected {
			t.Errorf("NormalizeParameterName(%q) = %q, want %q", c.raw, got, c.expected)
		}
	}
}

func TestHasIsolatedToken(t *testing.T) {
	if !hasIsolatedToken("ALKALINITY M", "M") {
		t.Error("expected isolated M in \"ALKALINITY M\"")
	}
	if !hasIsolatedToken("M-ALKALINITY", "M") {
		t.Error("expected isolated M in \"M-ALKALINITY\"")
	}
	if hasIsolatedToken("AMMONIA", "M") {
		t.Error("did not expect isolated M inside \"AMMONIA\"")
	}
	if hasIsolatedToken("PHOSPHATE", "P") {
		t.Error("did not expect isolated P inside \"PHOSPHATE\"")
	}
}
