package mimetype

import (
	"strings"
	"testing"

	"github.com/kstaniek/ncodec/internal/ncodecerr"
)

func TestDecode_RequiredKeysOnly(t *testing.T) {
	m, err := Decode("interface=stream;type=pdu;schema=fbs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{"interface": "stream", "type": "pdu", "schema": "fbs"}
	if len(m) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(m), len(want), m)
	}
	for k, v := range want {
		if m[k] != v {
			t.Fatalf("key %q = %q, want %q", k, m[k], v)
		}
	}
}

func TestDecode_OptionalParameters(t *testing.T) {
	m, err := Decode("interface=stream; type=can; schema=fbs; bus=veh0; node_id=5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["bus"] != "veh0" || m["node_id"] != "5" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestDecode_EmptyString(t *testing.T) {
	if _, err := Decode(""); !ncodecerr.IsConfigError(err) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

func TestDecode_MissingRequiredKey(t *testing.T) {
	cases := []string{
		"type=pdu;schema=fbs",
		"interface=stream;schema=fbs",
		"interface=stream;type=pdu",
	}
	for _, mt := range cases {
		if _, err := Decode(mt); !ncodecerr.IsConfigError(err) {
			t.Fatalf("%q: want ConfigError, got %v", mt, err)
		}
	}
}

func TestDecode_UnsupportedType(t *testing.T) {
	_, err := Decode("interface=stream;type=xyz;schema=fbs")
	if !ncodecerr.IsConfigError(err) {
		t.Fatalf("want ConfigError, got %v", err)
	}
	if want := "unsupported type: xyz"; !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not contain %q", err.Error(), want)
	}
}

func TestDecode_WrongInterfaceOrSchema(t *testing.T) {
	if _, err := Decode("interface=shmem;type=can;schema=fbs"); !ncodecerr.IsConfigError(err) {
		t.Fatalf("want ConfigError for bad interface, got %v", err)
	}
	if _, err := Decode("interface=stream;type=can;schema=json"); !ncodecerr.IsConfigError(err) {
		t.Fatalf("want ConfigError for bad schema, got %v", err)
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode("interface=stream;type=can;schema=fbs;bogus=1")
	if !ncodecerr.IsConfigError(err) {
		t.Fatalf("want ConfigError, got %v", err)
	}
	if want := "unexpected mimetype parameter"; !strings.Contains(err.Error(), want) {
		t.Fatalf("error %q does not contain %q", err.Error(), want)
	}
}

func TestDecode_LaterTokenOverrides(t *testing.T) {
	m, err := Decode("interface=stream;type=can;schema=fbs;bus_id=1;bus_id=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["bus_id"] != "2" {
		t.Fatalf("bus_id = %q, want %q", m["bus_id"], "2")
	}
}
