package aoc

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

var (
	// ErrNoSession is returned when a real input has to be downloaded but
	// no session cookie is configured.
	ErrNoSession = errors.New("aoc: no session cookie")

	// ErrFetch is returned when adventofcode.com does not serve an input.
	ErrFetch = errors.New("aoc: fetching input")
)

const (
	sessionEnv     = "AOC_SESSION"
	sessionKeyFile = "~/keys/aoc.session"
)

// loadSession finds the adventofcode.com session cookie. The environment
// wins over envFile, which wins over the contents of keyFile. A missing
// envFile is not an error.
func loadSession(envFile, keyFile string) (string, error) {
	if v := strings.TrimSpace(os.Getenv(sessionEnv)); v != "" {
		return v, nil
	}
	env, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		if v := strings.TrimSpace(env[sessionEnv]); v != "" {
			return v, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("aoc: loading %s: %w", envFile, err)
	}

	name, err := homedir.Expand(keyFile)
	if err != nil {
		return "", fmt.Errorf("aoc: session key file: %w", err)
	}
	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: set %s or write %s", ErrNoSession, sessionEnv, keyFile)
	} else if err != nil {
		return "", err
	}
	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNoSession, keyFile)
	}
	return v, nil
}

// inputCache keeps real inputs on disk and downloads the ones it lacks.
type inputCache struct {
	dir     string
	baseURL string
	client  *http.Client
	session func() (string, error)
}

func newInputCache(cfg *Config) *inputCache {
	return &inputCache{
		dir:     cfg.CacheDir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		client:  cfg.Client,
		session: sync.OnceValues(func() (string, error) {
			return loadSession(cfg.EnvFile, cfg.KeyFile)
		}),
	}
}

func (c *inputCache) path(year, day int) string {
	return filepath.Join(c.dir, strconv.Itoa(year), strconv.Itoa(day)+".input")
}

// get returns the input of a day, from disk if it was fetched before.
func (c *inputCache) get(year, day int) ([]byte, error) {
	name := c.path(year, day)
	b, err := os.ReadFile(name)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	b, err = c.fetch(fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, b, 0o644); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *inputCache) fetch(url string) ([]byte, error) {
	session, err := c.session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, url, res.Status)
	}
	return io.ReadAll(res.Body)
}
