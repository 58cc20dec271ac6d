package metadata

import "fmt"

const eqCodePrefix = "EQ"

// FormatEquipmentCode renders the externally visible equipment identifier
// for a numeric sequence value, e.g. 1 -> "EQ-000001". Values beyond six
// digits keep their full width.
func FormatEquipmentCode(n int) string {
	return fmt.Sprintf("%s-%06d", eqCodePrefix, n)
}
