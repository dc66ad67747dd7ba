package util

import (
	"strconv"
)

// StrSliceToUInt64Slice converts decimal id strings to uint64s.
func StrSliceToUInt64Slice(in []string) ([]uint64, error) {
	out := make([]uint64, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// PtrString converts a string to *string.
func PtrString(s string) *string {
	return &s
}
