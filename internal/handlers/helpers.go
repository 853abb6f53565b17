package handlers

import "strconv"

func queryInt(val string, defaultVal int) int {
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

func queryBool(val string) bool {
	b, _ := strconv.ParseBool(val)
	return b
}
