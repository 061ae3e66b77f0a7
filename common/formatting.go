package common

import (
	"strings"
)

func RemoveLeadingAndTrailingSlashes(str string) string {
	return strings.Trim(str, "/")
}
