// Package mimetype parses and validates the codec configuration string
// (e.g. "interface=stream; type=pdu; schema=fbs; swc_id=23; ecu_id=5") into
// a key/value map. The result is a plain Go map: the order in which the
// parameters appeared in the string is not kept.
package mimetype

import (
	"regexp"
	"strings"

	"github.com/kstaniek/ncodec/internal/metrics"
	"github.com/kstaniek/ncodec/internal/ncodecerr"
)

var splitRE = regexp.MustCompile(`[;\s]+`)

// requiredKeys must all be present; order matters only for error messages.
var requiredKeys = []string{"interface", "type", "schema"}

// allowedKeys is the whitelist of parameters a mime string may set.
var allowedKeys = map[string]struct{}{
	"type": {}, "schema": {}, "interface": {}, "bus": {}, "bus_id": {},
	"node_id": {}, "interface_id": {}, "swc_id": {}, "ecu_id": {},
}

// configError records a config-error metric and builds the ConfigError to
// return, so every rejection path in Decode is counted.
func configError(format string, args ...any) error {
	metrics.IncConfigErrors()
	return ncodecerr.NewConfigError(format, args...)
}

// Decode splits mimeType on runs of ';' and whitespace, then each token on
// the first '=', building a map of parameter name to value. Later tokens
// override earlier ones sharing a key.
func Decode(mimeType string) (map[string]string, error) {
	if mimeType == "" {
		return nil, configError("MimeType is empty")
	}

	mimeMap := make(map[string]string)
	for _, part := range splitRE.Split(mimeType, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])
		if key == "" || value == "" {
			continue
		}
		mimeMap[key] = value
	}

	for _, key := range requiredKeys {
		value, ok := mimeMap[key]
		if !ok {
			return nil, configError("missing required mimetype parameter")
		}
		switch key {
		case "type":
			if value != "can" && value != "pdu" {
				return nil, configError("unsupported type: %s", value)
			}
		case "interface":
			if value != "stream" {
				return nil, configError("wrong interface: %s", value)
			}
		case "schema":
			if value != "fbs" {
				return nil, configError("wrong schema: %s", value)
			}
		}
	}

	for key := range mimeMap {
		if _, ok := allowedKeys[key]; !ok {
			return nil, configError("unexpected mimetype parameter: %s", key)
		}
	}

	return mimeMap, nil
}
