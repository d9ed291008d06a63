package slist

import "strings"

// the foreground (lower case) and background (upper case) letters plus
// bold understood by the terminal package, which logs anything else
const colorSyntax = "krgybmcwKRGYBMCW!"

type Configuration struct {
	prefix string
	color  string
}

// Creates a display configuration object.
// Defaults are "node" as the line prefix and no color.
func Configure() *Configuration {
	return &Configuration{
		prefix: "node",
	}
}

// The label written before each value [node]
func (c *Configuration) Prefix(prefix string) *Configuration {
	c.prefix = prefix
	return c
}

// Colors the prefix using the terminal package's color syntax, ie "g", "y",
// "r" or "y!" for bold. An empty string, or one with a character outside
// of the syntax, disables color [""]
func (c *Configuration) Color(syntax string) *Configuration {
	for _, r := range syntax {
		if !strings.ContainsRune(colorSyntax, r) {
			syntax = ""
			break
		}
	}
	c.color = syntax
	return c
}
