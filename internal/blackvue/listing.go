// SPDX-License-Identifier: MIT

package blackvue

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

// fileLineRe matches one index entry, e.g.
// "n:/Record/20230101_000000_NF.mp4,s:1000000". The leading version marker
// line ("v:1.00") never matches and is skipped like any other stray line.
var fileLineRe = regexp.MustCompile(`^n:/Record/(.+),s:\d+$`)

// parseListing extracts recording filenames from the index body, preserving
// the order the device reported them in.
func parseListing(body string) []string {
	var names []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		m := fileLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		names = append(names, m[1])
	}
	return names
}

// decodeBody reads the response body as text using the charset advertised
// in the Content-Type header, defaulting to UTF-8.
func decodeBody(res *http.Response) (string, error) {
	charset := "utf-8"
	if ct := res.Header.Get("Content-Type"); ct != "" {
		if _, params, err := mime.ParseMediaType(ct); err == nil {
			if cs, ok := params["charset"]; ok {
				charset = cs
			}
		}
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unsupported charset %q: %w", charset, err)
	}

	raw, err := io.ReadAll(enc.NewDecoder().Reader(res.Body))
	if err != nil {
		return "", fmt.Errorf("read listing: %w", err)
	}
	return string(raw), nil
}
