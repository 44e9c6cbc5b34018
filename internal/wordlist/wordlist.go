// Package wordlist reads and filters newline-separated word lists.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrEmpty is returned when a source holds no non-blank lines.
var ErrEmpty = errors.New("word list is empty")

// LoadWords reads the word list stored at path.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Debug().Err(cerr).Str("path", path).Msg("failed to close word list")
		}
	}()
	return ReadWords(f)
}

// ReadWords returns the trimmed non-blank lines of r in order.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}
