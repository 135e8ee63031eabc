package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrMalformed  = errors.New("malformed record")
	ErrOutOfRange = errors.New("value out of range")
	ErrTooLong    = errors.New("field too long")
)

const maxLineLen = 1 << 20

type FileKind string

const (
	ItemFile   FileKind = "item"
	MemberFile FileKind = "member"
)

// LoadError reports why a catalog file was rejected. Line is 0 when the file
// could not be opened or read.
type LoadError struct {
	Kind FileKind
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line == 0 && !isRecordErr(e.Err) {
		return fmt.Sprintf("Can't open file: %s", e.Path)
	}
	return fmt.Sprintf("Invalid %s file: %s", e.Kind, e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

func isRecordErr(err error) bool {
	return errors.Is(err, ErrMalformed) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrTooLong) ||
		errors.Is(err, ErrDuplicate) ||
		errors.Is(err, ErrInvalid)
}

// Load builds a store from an item file and a member file. Both collections
// come back sorted by id.
func Load(itemPath, memberPath string) (*MemStore, error) {
	s := NewMemStore()
	if err := LoadItems(itemPath, s); err != nil {
		return nil, err
	}
	s.SortItems(ItemsByID)

	if err := LoadMembers(memberPath, s); err != nil {
		return nil, err
	}
	s.SortMembers(MembersByID)
	return s, nil
}

func LoadItems(path string, s Store) error {
	return eachLine(ItemFile, path, func(line string) error {
		it, err := ParseItem(line)
		if err != nil {
			return err
		}
		return s.AddItem(it)
	})
}

func LoadMembers(path string, s Store) error {
	return eachLine(MemberFile, path, func(line string) error {
		m, err := ParseMember(line)
		if err != nil {
			return err
		}
		return s.AddMember(m)
	})
}

// ParseItem parses "<id> <cost> <name>". The name is the rest of the line.
func ParseItem(line string) (*Item, error) {
	idField, rest := cutField(line)
	costField, name := cutField(rest)
	name = strings.TrimSpace(name)
	if idField == "" || costField == "" || name == "" {
		return nil, ErrMalformed
	}

	id, err := strconv.Atoi(idField)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q", ErrMalformed, idField)
	}
	cost, err := strconv.Atoi(costField)
	if err != nil {
		return nil, fmt.Errorf("%w: cost %q", ErrMalformed, costField)
	}
	if id <= 0 || cost <= 0 {
		return nil, fmt.Errorf("%w: id=%d cost=%d", ErrOutOfRange, id, cost)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return nil, fmt.Errorf("%w: name %q", ErrTooLong, name)
	}

	return &Item{ID: id, Name: name, Cost: cost}, nil
}

// ParseMember parses "<id> <name>". The name is the rest of the line.
func ParseMember(line string) (*Member, error) {
	id, name := cutField(line)
	name = strings.TrimSpace(name)
	if id == "" || name == "" {
		return nil, ErrMalformed
	}
	if utf8.RuneCountInString(id) > MaxMemberIDLen {
		return nil, fmt.Errorf("%w: id %q", ErrTooLong, id)
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return nil, fmt.Errorf("%w: name %q", ErrTooLong, name)
	}

	return &Member{ID: id, Name: name}, nil
}

func eachLine(kind FileKind, path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Kind: kind, Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 128), maxLineLen)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if err := fn(line); err != nil {
			return &LoadError{Kind: kind, Path: path, Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &LoadError{Kind: kind, Path: path, Line: n + 1, Err: fmt.Errorf("%w: %v", ErrTooLong, err)}
		}
		return &LoadError{Kind: kind, Path: path, Err: err}
	}
	return nil
}

// cutField splits off the first whitespace-separated field of s.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
