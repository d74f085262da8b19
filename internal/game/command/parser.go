package command

import "strings"

// ParseResult holds the parsed command word and its arguments.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the text after the command with its original spacing.
	RawArgs string
}

// Parse splits a line into a command word and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}
	}
	line = strings.TrimSpace(line)
	rest := strings.TrimSpace(line[len(fields[0]):])
	res := ParseResult{Command: strings.ToLower(fields[0]), RawArgs: rest}
	if len(fields) > 1 {
		res.Args = fields[1:]
	}
	return res
}

// Empty reports whether the parsed line had no command.
func (p ParseResult) Empty() bool { return p.Command == "" }

// Target joins Args with single spaces, so "get  silver   spear" targets "silver spear".
func (p ParseResult) Target() string { return strings.Join(p.Args, " ") }
