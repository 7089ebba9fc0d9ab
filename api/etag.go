package api

import (
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// etag returns a strong entity tag for body.
func etag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// matchesETag reports whether an If-None-Match header value lists tag.
func matchesETag(header, tag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == tag {
			return true
		}
	}
	return false
}

// writeCollection writes v as JSON tagged with its ETag, answering 304 when
// the client already holds the same representation.
func writeCollection(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Println("Error encoding response:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	tag := etag(body)
	w.Header().Set("ETag", tag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && matchesETag(inm, tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(append(body, '\n'))
}
