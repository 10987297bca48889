package main

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/ogscrape"
)

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// errorEnvelope is printed in place of a result when a scrape fails.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError prints err as an error envelope.
func writeError(w io.Writer, err error) {
	_ = writeJSON(w, errorEnvelope{Error: errorText(err)})
}

// errorText returns the user-facing message of application errors and the
// full text of anything else, such as network failures.
func errorText(err error) string {
	if ogscrape.ErrorCode(err) == ogscrape.EINTERNAL {
		return err.Error()
	}
	return ogscrape.ErrorMessage(err)
}
