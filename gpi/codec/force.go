package codec

import "fmt"

// VHDLForceLogic builds the VHDL literal a FLI/VHPI backend hands its
// native force primitive for a logic scalar or vector: a radix-2 literal
// "2#<binstr>#" (spec.md §4.G).
func VHDLForceLogic(binstr string) string {
	return "2#" + binstr + "#"
}

// VHDLForceInteger builds the VHDL literal for forcing an integer
// handle: "[-]10#<decimal>#".
func VHDLForceInteger(v int64) string {
	if v < 0 {
		return fmt.Sprintf("-10#%d#", -v)
	}
	return fmt.Sprintf("10#%d#", v)
}
