package transport

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	blockSeparator  = "\r\n\r\n"
	headerSeparator = ": "
	trimCutset      = " \t\n\r\x00\x0B"
)

var statusLinePattern = regexp.MustCompile(`HTTP/\d\.\d\s+(\d+)\s+.*`)

// ParseRawResponse splits raw wire text into status code, headers and body.
//
// The text may hold several header blocks (one per redirect hop) ahead of
// the body; only the last block is kept. It never fails: missing pieces
// come back as zero values.
func ParseRawResponse(raw string) *Response {
	rawHeaders, body := splitHeadersAndBody(raw)
	status, headers := parseHeaderBlock(rawHeaders)

	return &Response{
		statusCode: status,
		headers:    headers,
		body:       body,
	}
}

func splitHeadersAndBody(raw string) (string, string) {
	parts := strings.Split(raw, blockSeparator)
	body := parts[len(parts)-1]
	head := strings.Join(parts[:len(parts)-1], blockSeparator)

	return strings.Trim(head, trimCutset), strings.Trim(body, trimCutset)
}

func parseHeaderBlock(raw string) (int, map[string]string) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	blocks := strings.Split(strings.Trim(raw, trimCutset), "\n\n")
	last := blocks[len(blocks)-1]

	status := 0
	headers := make(map[string]string)
	for _, line := range strings.Split(last, "\n") {
		key, value, ok := strings.Cut(line, headerSeparator)
		if !ok {
			status = parseStatusLine(line)
			continue
		}
		headers[key] = value
	}

	return status, headers
}

func parseStatusLine(line string) int {
	m := statusLinePattern.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	code, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return code
}
