package codec

// nineValuedOrder is the ordered literal set of VHDL's std_ulogic, the
// 9-valued enumeration the Logic mapping policy recognizes (spec.md
// §4.B). Shared by every VHDL-family backend (VHPI, FLI).
var nineValuedOrder = []string{"U", "X", "0", "1", "Z", "W", "L", "H", "-"}

// IsLogicLiteralSet reports whether lits is bit ({"0","1"}) or the
// 9-valued std_ulogic enumeration, in declaration order — the two
// literal sets the Logic mapping policy recognizes as a logic
// scalar/vector base type.
func IsLogicLiteralSet(lits []string) bool {
	if len(lits) == 2 {
		return lits[0] == "0" && lits[1] == "1"
	}
	if len(lits) != len(nineValuedOrder) {
		return false
	}
	for i, l := range lits {
		if l != nineValuedOrder[i] {
			return false
		}
	}
	return true
}

// IsBooleanLiteralSet reports whether lits is VHDL boolean's ordered
// {"FALSE","TRUE"} enumeration; boolean surfaces as INTEGER.
func IsBooleanLiteralSet(lits []string) bool {
	return len(lits) == 2 && lits[0] == "FALSE" && lits[1] == "TRUE"
}

// IsCharacterLiteralSet reports whether lits has VHDL character's 256
// literals; character surfaces as INTEGER.
func IsCharacterLiteralSet(lits []string) bool {
	return len(lits) == 256
}
