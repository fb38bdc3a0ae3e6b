package aoc

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const baseURL = "https://adventofcode.com"

func (p *Puzzle) cachePath(ext string) string {
	return filepath.Join(flagInputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.%s", p.day.day, ext))
}

// session returns the session cookie, from $AOC_SESSION or the session
// file.
var session = sync.OnceValue(func() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return strings.TrimSpace(s)
	}
	name := flagSessionFile
	if name == "" {
		name = filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(name))))
})

func request(method, url string, body io.Reader) *http.Request {
	req := MustGet(http.NewRequest(method, url, body))
	req.AddCookie(&http.Cookie{Name: "session", Value: session()})
	return req
}

func doRequest(req *http.Request) *http.Response {
	res := MustGet(http.DefaultClient.Do(req))
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		log.Fatalf("bad status fetching %s: %v", req.URL, res.Status)
	}
	return res
}

// fileOrFetch returns the contents of filename, fetching url into it
// first if it does not exist.
func fileOrFetch(filename, url string) []byte {
	if f, err := os.ReadFile(filename); err == nil {
		return f
	}

	body := fetch(url)
	MustDo(os.MkdirAll(filepath.Dir(filename), 0700))
	MustDo(os.WriteFile(filename, body, 0644))
	return body
}

func fetch(url string) []byte {
	res := doRequest(request("GET", url, nil))
	defer res.Body.Close()
	return MustGet(io.ReadAll(res.Body))
}
