package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Map     bool
	Observe bool
	Match   bool
	History bool
}

var d *debug

func init() {
	d = &debug{}
	d.Map = boolEnv("JDOC_DEBUG_MAP")
	d.Observe = boolEnv("JDOC_DEBUG_OBSERVE")
	d.Match = boolEnv("JDOC_DEBUG_MATCH")
	d.History = boolEnv("JDOC_DEBUG_HISTORY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Map() bool {
	return d.Map
}
func Observe() bool {
	return d.Observe
}
func Match() bool {
	return d.Match
}
func History() bool {
	return d.History
}
