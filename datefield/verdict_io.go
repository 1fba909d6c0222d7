package datefield

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ReadValues calls fn for every non-blank line of r, trimmed.
func ReadValues(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// ReadValuesJSONL reads {"value": ...} objects; other fields are ignored.
func ReadValuesJSONL(r io.Reader, fn func(string) error) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var rec struct {
			Value string `json:"value"`
		}
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(rec.Value); err != nil {
			return err
		}
	}
}

// WriteVerdictsJSONL writes verdicts as JSON lines.
func WriteVerdictsJSONL(w io.Writer, vs []Verdict) error {
	enc := json.NewEncoder(w)
	for i := range vs {
		vs[i].Clean()
		if err := enc.Encode(&vs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ReadVerdictsJSONL reads verdicts from a JSON lines stream.
func ReadVerdictsJSONL(r io.Reader, fn func(Verdict) error) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	for {
		var v Verdict
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		v.Clean()
		if err := fn(v); err != nil {
			return err
		}
	}
}

var verdictHeader = []string{"id", "type", "value", "complete", "partial", "valid", "formatted"}

// WriteVerdictsCSV writes a header row and one row per verdict.
func WriteVerdictsCSV(w io.Writer, vs []Verdict) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(verdictHeader); err != nil {
		return err
	}
	rec := make([]string, len(verdictHeader))
	for i := range vs {
		v := vs[i]
		v.Clean()
		rec[0] = v.ID
		rec[1] = v.Type
		rec[2] = v.Value
		rec[3] = strconv.FormatBool(v.Complete)
		rec[4] = strconv.FormatBool(v.Partial)
		rec[5] = strconv.FormatBool(v.Valid)
		rec[6] = v.Formatted
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadVerdictsCSV reads rows written by WriteVerdictsCSV. Columns are
// matched by header name, so extra or reordered columns are fine.
func ReadVerdictsCSV(r io.Reader, fn func(Verdict) error) error {
	cr := csv.NewReader(bufio.NewReader(r))
	header, err := cr.Read()
	if err != nil {
		return err
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[h] = i
	}
	get := func(rec []string, key string) string {
		if p, ok := idx[key]; ok && p < len(rec) {
			return rec[p]
		}
		return ""
	}
	flag := func(rec []string, key string) bool {
		b, _ := strconv.ParseBool(get(rec, key))
		return b
	}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		v := Verdict{
			ID:        get(rec, "id"),
			Type:      get(rec, "type"),
			Value:     get(rec, "value"),
			Complete:  flag(rec, "complete"),
			Partial:   flag(rec, "partial"),
			Formatted: get(rec, "formatted"),
		}
		v.Clean()
		if err := fn(v); err != nil {
			return err
		}
	}
}
