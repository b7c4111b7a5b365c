package codec

import (
	"testing"

	"github.com/kstaniek/ncodec/internal/can"
	"github.com/kstaniek/ncodec/internal/pdu"
)

func TestNewFromMimeType_Dispatch(t *testing.T) {
	c, err := NewFromMimeType("interface=stream;type=can;schema=fbs", "model", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.(*can.Codec); !ok {
		t.Fatalf("got %T, want *can.Codec", c)
	}

	p, err := NewFromMimeType("interface=stream;type=pdu;schema=fbs", "model", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*pdu.Codec); !ok {
		t.Fatalf("got %T, want *pdu.Codec", p)
	}
}

func TestNewFromMimeType_BadConfig(t *testing.T) {
	if _, err := NewFromMimeType("interface=stream;type=xyz;schema=fbs", "model", 0); !IsConfigError(err) {
		t.Fatalf("want ConfigError, got %v", err)
	}
}
