package console

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type command struct {
	name  string
	match func(line string) (arg string, ok bool)
	run   func(s *session, arg string) error
}

// commands is matched top to bottom; the first match wins.
var commands = []command{
	{name: "quit", match: prefix("quit"), run: (*session).quit},
	{name: "sale", match: prefix("sale"), run: (*session).sale},
	{name: "list items", match: exact("list items"), run: (*session).listItemsByID},
	{name: "list item names", match: exact("list item names"), run: (*session).listItemsByName},
	{name: "list members", match: exact("list members"), run: (*session).listMembersByID},
	{name: "list member names", match: exact("list member names"), run: (*session).listMembersByName},
	{name: "list topsellers", match: exact("list topsellers"), run: (*session).listTopSellers},
	{name: "list member", match: prefix("list member"), run: (*session).listMember},
	{name: "search item", match: prefix("search item"), run: (*session).searchItems},
	{name: "search member", match: prefix("search member"), run: (*session).searchMembers},
}

const unknownCommand = "unknown"

func lookup(line string) (command, string, bool) {
	for _, c := range commands {
		if arg, ok := c.match(line); ok {
			return c, arg, true
		}
	}
	return command{}, "", false
}

func exact(s string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		return "", line == s
	}
}

// prefix matches p alone or p followed by whitespace and an argument. The
// argument is the trimmed remainder of the line.
func prefix(p string) func(string) (string, bool) {
	return func(line string) (string, bool) {
		rest, ok := strings.CutPrefix(line, p)
		if !ok {
			return "", false
		}
		if rest == "" {
			return "", true
		}
		if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(r) {
			return "", false
		}
		return strings.TrimSpace(rest), true
	}
}
