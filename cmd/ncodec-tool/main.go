// Command ncodec-tool is an illustrative stand-in for the FMU/co-simulation
// driver loop that spec.md places outside the codec core: it reads an
// ASCII-85-encoded buffer, decodes one batch of messages through
// internal/codec, reports what it found, then writes a canned outgoing
// batch, flushes, and prints the re-encoded ASCII-85 reply.
package main

import (
	"bytes"
	"context"
	"encoding/ascii85"
	"fmt"
	"io"
	"os"

	"github.com/kstaniek/ncodec/internal/can"
	"github.com/kstaniek/ncodec/internal/codec"
	"github.com/kstaniek/ncodec/internal/logging"
	"github.com/kstaniek/ncodec/internal/metrics"
	"github.com/kstaniek/ncodec/internal/pdu"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("ncodec-tool %s (commit %s, built %s)\n", version, commit, date)
		return
	}
	if cfg == nil {
		os.Exit(1)
	}
	l := setupLogger(cfg.logFormat, cfg.logLevel)

	if cfg.metricsAddr != "" {
		metrics.InitBuildInfo(version, commit, date)
		srv := metrics.StartHTTP(cfg.metricsAddr)
		defer func() { _ = srv.Shutdown(context.Background()) }()
	}

	raw, err := decodeASCII85FromStdin()
	if err != nil {
		l.Error("ascii85_decode_error", "error", err)
		os.Exit(1)
	}

	c, err := codec.NewFromMimeType(cfg.mimeType, cfg.modelName, 0)
	if err != nil {
		l.Error("codec_config_error", "error", err)
		os.Exit(1)
	}

	switch typed := c.(type) {
	case *can.Codec:
		typed.Stream = raw
		msgs, err := typed.Read()
		if err != nil {
			l.Error("can_decode_error", "error", err)
			os.Exit(1)
		}
		l.Info("can_batch_decoded", "messages", len(msgs))
		for _, msg := range msgs {
			l.Debug("can_message", "frame_id", msg.FrameID, "bus_id", msg.Sender.BusID, "bytes", len(msg.Payload))
		}

		typed.Write([]can.CanMessage{cannedCanMessage()})
		typed.Flush()
		reply, err := encodeASCII85(typed.Stream)
		if err != nil {
			l.Error("ascii85_encode_error", "error", err)
			os.Exit(1)
		}
		l.Info("can_batch_encoded", "bytes", len(typed.Stream))
		fmt.Println(reply)
	case *pdu.Codec:
		typed.Stream = raw
		msgs, err := typed.Read()
		if err != nil {
			l.Error("pdu_decode_error", "error", err)
			os.Exit(1)
		}
		l.Info("pdu_batch_decoded", "messages", len(msgs))
		for _, msg := range msgs {
			l.Debug("pdu_message", "id", msg.ID, "swc_id", msg.SwcID, "bytes", len(msg.Payload))
		}

		typed.Write([]pdu.PduMessage{cannedPduMessage()})
		typed.Flush()
		reply, err := encodeASCII85(typed.Stream)
		if err != nil {
			l.Error("ascii85_encode_error", "error", err)
			os.Exit(1)
		}
		l.Info("pdu_batch_encoded", "bytes", len(typed.Stream))
		fmt.Println(reply)
	}
}

// cannedCanMessage is the canned outgoing frame ncodec-tool echoes back
// after decoding, standing in for the host model's next simulation step.
func cannedCanMessage() can.CanMessage {
	return can.CanMessage{
		FrameID:   0x100,
		FrameType: can.FrameTypeBase,
		Sender:    can.Sender{BusID: 0, NodeID: 0, InterfaceID: 0},
		Payload:   []byte("ncodec-tool"),
	}
}

// cannedPduMessage is the canned outgoing PDU ncodec-tool echoes back after
// decoding, standing in for the host model's next simulation step.
func cannedPduMessage() pdu.PduMessage {
	return pdu.PduMessage{
		ID:      1,
		Payload: []byte("ncodec-tool"),
	}
}

// decodeASCII85FromStdin reads the outer ASCII-85 transport framing an FMU
// driver would apply before handing bytes to a codec, and returns the raw
// wire buffer underneath it.
func decodeASCII85FromStdin() ([]byte, error) {
	encoded, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	decoded := make([]byte, len(encoded))
	n, _, err := ascii85.Decode(decoded, encoded, true)
	if err != nil {
		return nil, fmt.Errorf("ascii85 decode: %w", err)
	}
	return decoded[:n], nil
}

// encodeASCII85 applies the outer ASCII-85 transport framing a co-simulation
// host would expect back in its string variable.
func encodeASCII85(raw []byte) (string, error) {
	var buf bytes.Buffer
	w := ascii85.NewEncoder(&buf)
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("ascii85 encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("ascii85 encode: %w", err)
	}
	return buf.String(), nil
}
