package localstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CookieJar is an http.CookieJar for a single backend that survives process
// restarts. The CLI needs it to keep the HttpOnly refresh cookie between
// invocations; code never reads the cookie values itself.
type CookieJar struct {
	path string
	base *url.URL
	jar  *cookiejar.Jar

	mu    sync.Mutex
	saved map[string]*http.Cookie
}

type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"http_only"`
}

func NewCookieJar(path, baseURL string) (*CookieJar, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &CookieJar{path: path, base: base, jar: jar, saved: make(map[string]*http.Cookie)}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CookieJar) load() error {
	b, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var stored []storedCookie
	if err := json.Unmarshal(b, &stored); err != nil {
		return err
	}
	now := time.Now()
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		if !s.Expires.IsZero() && s.Expires.Before(now) {
			continue
		}
		ck := &http.Cookie{
			Name:     s.Name,
			Value:    s.Value,
			Path:     s.Path,
			Expires:  s.Expires,
			Secure:   s.Secure,
			HttpOnly: s.HttpOnly,
		}
		c.saved[s.Name] = ck
		cookies = append(cookies, ck)
	}
	c.jar.SetCookies(c.base, cookies)
	return nil
}

func (c *CookieJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	c.jar.SetCookies(u, cookies)
	if u.Host != c.base.Host {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ck := range cookies {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.saved, ck.Name)
			continue
		}
		cp := *ck
		if ck.MaxAge > 0 {
			cp.Expires = time.Now().Add(time.Duration(ck.MaxAge) * time.Second)
		}
		c.saved[ck.Name] = &cp
	}
	// Losing the file only costs a re-login.
	_ = c.persist()
}

func (c *CookieJar) Cookies(u *url.URL) []*http.Cookie {
	return c.jar.Cookies(u)
}

func (c *CookieJar) persist() error {
	stored := make([]storedCookie, 0, len(c.saved))
	for _, ck := range c.saved {
		stored = append(stored, storedCookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Path:     ck.Path,
			Expires:  ck.Expires,
			Secure:   ck.Secure,
			HttpOnly: ck.HttpOnly,
		})
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(c.path, b, 0o600)
}
