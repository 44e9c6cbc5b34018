// Package wordfreq builds five-letter dictionaries from the wordfreq dataset.
package wordfreq

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/verte-zerg/tuidle/internal/wordlist"
)

const (
	pypiEndpoint = "https://pypi.org/pypi/wordfreq/json"
	dataPrefix   = "wordfreq/data/"

	// ListLarge and ListSmall name the English frequency lists shipped in the wheel.
	ListLarge = "large"
	ListSmall = "small"
)

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

type pypiURL struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

type pypiResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []pypiURL `json:"urls"`
}

// header is the first element of a wordfreq cBpack file.
type header struct {
	Format  string `msgpack:"format"`
	Version int    `msgpack:"version"`
}

// DownloadLatestWheel fetches the latest wordfreq wheel into cacheDir. A wheel
// already present in the cache is reused.
func DownloadLatestWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	resp, err := httpRequest(ctx, pypiEndpoint)
	if err != nil {
		return Wheel{}, err
	}
	defer closeQuietly(resp.Body, "pypi response")

	if resp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected pypi status: %s", resp.Status)
	}

	var payload pypiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Wheel{}, fmt.Errorf("failed to decode pypi response: %w", err)
	}
	if payload.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}

	url, filename := pickWheelURL(payload.URLs)
	if url == "" {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	wheel := Wheel{Version: payload.Info.Version, Path: filepath.Join(cacheDir, filename), Filename: filename}
	if _, err := os.Stat(wheel.Path); err == nil {
		wheel.Cached = true
		return wheel, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	log.Info().Str("version", wheel.Version).Str("url", url).Msg("downloading wordfreq wheel")
	wheelResp, err := httpRequest(ctx, url)
	if err != nil {
		return Wheel{}, err
	}
	defer closeQuietly(wheelResp.Body, "wheel response")
	if wheelResp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected wheel status: %s", wheelResp.Status)
	}

	if err := writeAtomic(wheel.Path, func(w io.Writer) error {
		_, err := io.Copy(w, wheelResp.Body)
		return err
	}); err != nil {
		return Wheel{}, fmt.Errorf("failed to download wheel: %w", err)
	}
	return wheel, nil
}

// ExtractFiveLetterWords returns up to limit five-letter a-z words from the
// English list of the given type, most frequent first.
func ExtractFiveLetterWords(wheelPath, listType string, limit int) ([]string, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	if listType != ListLarge && listType != ListSmall {
		return nil, fmt.Errorf("unknown word list type %q", listType)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer closeQuietly(reader, "wheel")

	name := dataPrefix + listType + "_en.msgpack.gz"
	var dataFile *zip.File
	for _, file := range reader.File {
		if file.Name == name {
			dataFile = file
			break
		}
	}
	if dataFile == nil {
		return nil, fmt.Errorf("no %s data file in wheel", name)
	}

	rc, err := dataFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer closeQuietly(rc, name)

	bins, err := decodeBins(rc)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, bin := range bins {
		words = append(words, wordlist.Normalize(bin, wordlist.FilterFiveLetters)...)
	}
	words = wordlist.Normalize(words, nil)
	if len(words) == 0 {
		return nil, fmt.Errorf("no five-letter words found in %s", name)
	}
	if len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// decodeBins reads a gzipped cBpack stream: a header map followed by one list
// of words per centibel bin.
func decodeBins(r io.Reader) ([][]string, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer closeQuietly(gz, "gzip stream")

	dec := msgpack.NewDecoder(gz)
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq data: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq header: %w", err)
	}
	if h.Format != "cB" || h.Version != 1 {
		return nil, fmt.Errorf("unsupported wordfreq format %q version %d", h.Format, h.Version)
	}

	bins := make([][]string, 0, n-1)
	for i := 1; i < n; i++ {
		var bin []string
		if err := dec.Decode(&bin); err != nil {
			return nil, fmt.Errorf("failed to decode bin %d: %w", i-1, err)
		}
		bins = append(bins, bin)
	}
	return bins, nil
}

// WriteDictionary writes one word per line to path, replacing it atomically.
func WriteDictionary(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dictionary dir: %w", err)
	}
	err := writeAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Join(words, "\n")+"\n")
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	return nil
}

// WriteAttribution writes ATTRIBUTION.txt next to a generated dictionary.
func WriteAttribution(outDir, version string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	source := "Source: https://github.com/rspeer/wordfreq"
	if version != "" {
		source += " (version " + version + ")"
	}
	attrText := strings.Join([]string{
		"Dictionary generated from the wordfreq dataset.",
		source,
		"Data license: Creative Commons Attribution-ShareAlike 4.0 International (CC BY-SA 4.0).",
		"https://creativecommons.org/licenses/by-sa/4.0/",
		"Changes were made: filtered to five-letter a-z words and truncated to the requested size.",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(outDir, "ATTRIBUTION.txt"), []byte(attrText), 0o644); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	return nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func pickWheelURL(urls []pypiURL) (string, string) {
	var fallback pypiURL
	for _, u := range urls {
		if u.Packagetype != "bdist_wheel" {
			continue
		}
		if strings.HasSuffix(u.Filename, "py3-none-any.whl") {
			return u.URL, u.Filename
		}
		if fallback.URL == "" {
			fallback = u
		}
	}
	return fallback.URL, fallback.Filename
}

func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()
	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func closeQuietly(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		log.Debug().Err(err).Str("resource", what).Msg("close failed")
	}
}
