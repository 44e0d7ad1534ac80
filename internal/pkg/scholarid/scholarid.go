// Package scholarid decodes the identity metadata that NIT Silchar encodes
// into a scholar ID: the first two digits carry the admission year, the
// digit at index 3 carries the branch.
package scholarid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// semesterByYearCode maps an admission-year code to the semester the batch
// is currently in. The table is only valid for the current academic session
// and is updated by hand each year; unknown codes resolve to "unknown", not
// an error.
var semesterByYearCode = map[string]int{
	"22": 8,
	"23": 6,
	"24": 4,
	"25": 2,
}

// branchByCode maps the branch digit to its short name.
var branchByCode = map[int]string{
	1: "CE",
	2: "CSE",
	3: "EE",
	4: "ECE",
	5: "EIE",
	6: "ME",
}

// CurrentSemester derives the semester a scholar is currently in from the
// admission-year code. The second return value is false when the ID is
// empty, too short, or belongs to a batch the table does not cover.
func CurrentSemester(id string) (int, bool) {
	if len(id) < 2 {
		return 0, false
	}
	sem, ok := semesterByYearCode[id[:2]]
	return sem, ok
}

// BranchShort derives the branch short name from the digit at index 3.
// Returns false for IDs shorter than 4 characters or digits outside the
// branch table.
func BranchShort(id string) (string, bool) {
	code, ok := BranchCode(id)
	if !ok {
		return "", false
	}
	branch, ok := branchByCode[code]
	return branch, ok
}

// BranchCode derives the numeric branch code from the digit at index 3.
// This is the foreign key into the course catalog, and any digit is a
// valid key; only the short-name mapping is table-gated. Returns false for
// IDs shorter than 4 characters or a non-digit at that position.
func BranchCode(id string) (int, bool) {
	if len(id) < 4 {
		return 0, false
	}
	c := id[3]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// Normalize renders a scholar identifier that may arrive as a string or a
// JSON number into its canonical decimal-digit string form. Integral floats
// (the form encoding/json hands us for numeric IDs) render without a
// decimal point or exponent.
func Normalize(id interface{}) string {
	switch v := id.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
