package form

import "github.com/tidwall/gjson"

// Rule validates the value at Path. Check returns an error message, or ""
// when the value is valid.
type Rule struct {
	Path  string
	Check func(v gjson.Result) string
}

// Required fails when the list at path is missing or empty.
func Required(path, message string) Rule {
	return Rule{Path: path, Check: func(v gjson.Result) string {
		if len(Strings(v)) == 0 {
			return message
		}
		return ""
	}}
}

// MaxItems fails when the list at path holds more than n items.
func MaxItems(path string, n int, message string) Rule {
	return Rule{Path: path, Check: func(v gjson.Result) string {
		if len(Strings(v)) > n {
			return message
		}
		return ""
	}}
}

// UniqueItems fails when the list at path repeats an item.
func UniqueItems(path, message string) Rule {
	return Rule{Path: path, Check: func(v gjson.Result) string {
		seen := make(map[string]struct{})
		for _, s := range Strings(v) {
			if _, ok := seen[s]; ok {
				return message
			}
			seen[s] = struct{}{}
		}
		return ""
	}}
}
