package templates

import (
	"strconv"
	"strings"
)

func prefixedList(prefix string, count int) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeParams(count int) string { return prefixedList("C", count) }
func zeroList(count int) string   { return prefixedList("zero", count) }
func resultList(count int) string { return prefixedList("c", count) }
