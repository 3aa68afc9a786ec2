package discord

import (
	"strings"
)

// CommandKind names a bot subcommand
type CommandKind int

const (
	// CommandBrowse shows the first page of every tool
	CommandBrowse CommandKind = iota
	// CommandSearch filters the grid by a query
	CommandSearch
	// CommandCategory filters the grid by a category
	CommandCategory
	// CommandShow describes a single tool
	CommandShow
	// CommandHelp lists the subcommands
	CommandHelp
)

// Command is a parsed chat command
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand reads content addressed to prefix. ok is false when the
// message is not a command for this bot at all. Unknown subcommands and
// subcommands missing their argument parse as CommandHelp.
func ParseCommand(prefix, content string) (cmd Command, ok bool) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(strings.ToLower(content), strings.ToLower(prefix)) {
		return Command{}, false
	}
	rest := content[len(prefix):]
	// "!toolsfoo" is someone else's command
	if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") && !strings.HasPrefix(rest, "\n") {
		return Command{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Command{Kind: CommandBrowse}, true
	}

	sub := strings.ToLower(fields[0])
	arg := strings.TrimSpace(strings.Join(fields[1:], " "))

	var kind CommandKind
	switch sub {
	case "search", "find":
		kind = CommandSearch
	case "category", "cat":
		kind = CommandCategory
	case "show", "info":
		kind = CommandShow
	case "all", "browse":
		return Command{Kind: CommandBrowse}, true
	default:
		return Command{Kind: CommandHelp}, true
	}

	if arg == "" {
		return Command{Kind: CommandHelp}, true
	}
	return Command{Kind: kind, Arg: arg}, true
}
