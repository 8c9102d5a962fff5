package documents

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound means no passport file is stored for the given client name.
var ErrNotFound = errors.New("no passport file stored for this client")

// Store keeps one uploaded passport file per client per extension under a
// fixed directory, keyed by the sanitized client display name.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create passports directory %v: %v", dir, err)
	}
	return &Store{dir: dir}, nil
}

// SanitizeName turns a client display name into a stable file key:
// decompose accented characters, drop the combining marks, then replace
// everything outside [A-Za-z0-9] and the Arabic block with an underscore.
func SanitizeName(name string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(stripMarks, name)
	if err != nil {
		decomposed = name
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 0x0600 && r <= 0x06FF:
			return r
		default:
			return '_'
		}
	}, decomposed)
}

func fileName(displayName, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	return fmt.Sprintf("client_%v.%v", SanitizeName(displayName), ext)
}

// Store writes the uploaded bytes under the name-derived key and returns the
// stored path. Re-uploading for the same name and extension overwrites the
// previous file.
func (s *Store) Store(displayName string, fileBytes []byte, ext string) (string, error) {
	if strings.TrimSpace(displayName) == "" {
		return "", errors.New("client name is required to store a passport file")
	}

	path := filepath.Join(s.dir, fileName(displayName, ext))
	if err := os.WriteFile(path, fileBytes, 0644); err != nil {
		return "", err
	}

	return path, nil
}

// Retrieve returns the stored path for the client, whatever extension the
// upload carried. ErrNotFound when nothing is stored under the name.
func (s *Store) Retrieve(displayName string) (string, error) {
	pattern := filepath.Join(s.dir, fmt.Sprintf("client_%v.*", SanitizeName(displayName)))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNotFound
	}

	return matches[0], nil
}
