package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Best-effort repair of free-form completion text into a JSON array. The model
// is asked for JSON only but routinely wraps it in fences or prose, drops
// quotes around keys, or leaves trailing commas. This is a bounded chain of
// text transforms with a hard failure at the end, not a grammar-based parser;
// callers treat failure as routine and fall back to local generation.

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	lineBreakRe     = regexp.MustCompile(`[\r\n\t]+`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	bareValueRe     = regexp.MustCompile(`:\s*([A-Za-z_][A-Za-z0-9_ -]*[A-Za-z0-9_])\s*([,}\]])`)
	nonASCIIRe      = regexp.MustCompile("[^\x20-\x7e]")
)

// RepairToArray cleans raw completion text and returns the first JSON array it
// can recover, element by element. The extracted block is tried as-is first:
// the regex repairs are not string-aware and would corrupt valid JSON whose
// string values happen to contain key-like or value-like patterns ("Tip: book
// online, arrive early"), so they run only once a strict parse has failed.
func RepairToArray(raw string) ([]json.RawMessage, error) {
	cleaned := extractJSONBlock(stripFences(raw))

	parsed, err := parseValue(cleaned)
	if err != nil {
		cleaned = structuralRepairs(cleaned)
		parsed, err = parseValue(cleaned)
	}
	if err != nil {
		// Aggressive pass: drop anything non-printable or non-ASCII and retry once.
		cleaned = structuralRepairs(nonASCIIRe.ReplaceAllString(cleaned, ""))
		parsed, err = parseValue(cleaned)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnparsableCompletion, err)
		}
	}

	switch v := parsed.(type) {
	case []json.RawMessage:
		return v, nil
	case map[string]json.RawMessage:
		if arr := firstArrayProperty(v); arr != nil {
			return arr, nil
		}
	}
	return nil, fmt.Errorf("%w: no array found in completion", ErrUnparsableCompletion)
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```JSON", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// extractJSONBlock trims leading prose and trailing chatter around the
// outermost JSON object or array.
func extractJSONBlock(s string) string {
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		if end := findMatching(s, arrStart, '[', ']'); end != -1 {
			return s[arrStart : end+1]
		}
		return s[arrStart:]
	}
	if objStart != -1 {
		if end := findMatching(s, objStart, '{', '}'); end != -1 {
			return s[objStart : end+1]
		}
		return s[objStart:]
	}
	return s
}

// findMatching walks the text string-aware to locate the closing delimiter.
func findMatching(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func structuralRepairs(s string) string {
	s = lineBreakRe.ReplaceAllString(s, " ")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = bareValueRe.ReplaceAllStringFunc(s, quoteBareValue)
	return strings.TrimSpace(s)
}

// quoteBareValue wraps unquoted word-like values, leaving JSON literals alone.
func quoteBareValue(match string) string {
	sub := bareValueRe.FindStringSubmatch(match)
	word := strings.TrimSpace(sub[1])
	switch word {
	case "true", "false", "null":
		return match
	}
	return fmt.Sprintf(`: "%s"%s`, word, sub[2])
}

func parseValue(s string) (interface{}, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "[") {
		var arr []json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil, err
		}
		return arr, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// firstArrayProperty recovers an array buried inside a wrapper object. Known
// wrapper keys are checked first, then the rest in sorted order so recovery is
// deterministic despite Go's map iteration.
func firstArrayProperty(obj map[string]json.RawMessage) []json.RawMessage {
	known := []string{"packages", "itineraries", "plans", "data", "results"}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range append(known, keys...) {
		rawVal, ok := obj[k]
		if !ok {
			continue
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(rawVal, &arr); err == nil {
			return arr
		}
	}
	return nil
}
