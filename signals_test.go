package jsoncodec

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zoobzio/capitan"
	capitantest "github.com/zoobzio/capitan/testing"
)

func TestEmitCodecCreated(_ *testing.T) {
	// Should not panic
	emitCodecCreated(context.Background(), "testing.Person", "scalar")
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), "testing.Person", 128, 100*time.Microsecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), "testing.Person", 0, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), "testing.Person", 128, 100*time.Microsecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), "testing.Person", 12, 100*time.Microsecond, errors.New("test error"))
}

func TestEmitLimitExceeded(_ *testing.T) {
	emitLimitExceeded(context.Background(), "[]testing.Person", 1035, 1030)
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalCodecCreated", SignalCodecCreated},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeComplete", SignalDecodeComplete},
		{"SignalLimitExceeded", SignalLimitExceeded},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyContentType", KeyContentType},
		{"KeyTypeName", KeyTypeName},
		{"KeyShape", KeyShape},
		{"KeySize", KeySize},
		{"KeyLimit", KeyLimit},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}

type signalledItem struct {
	Name string `json:"name"`
}

type signalledFailure struct {
	Name string `json:"name"`
}

func (signalledFailure) MarshalJSON() ([]byte, error) {
	return nil, errors.New("boom")
}

func TestEncodeWithLimit_EmitsEncodeComplete(t *testing.T) {
	capture := capitantest.NewEventCapture()
	listener := capitan.Hook(SignalEncodeComplete, capture.Handler())

	items := Must(New[signalledItem]())
	if _, ok, err := items.EncodeWithLimit(signalledItem{Name: "fits"}, 1024); !ok || err != nil {
		t.Fatalf("EncodeWithLimit() ok=%v err=%v, want present", ok, err)
	}
	if _, ok, err := items.EncodeWithLimit(signalledItem{Name: strings.Repeat("x", 100)}, 10); ok || err != nil {
		t.Fatalf("EncodeWithLimit() ok=%v err=%v, want absent", ok, err)
	}

	failures := Must(New[signalledFailure]())
	if _, _, err := failures.EncodeWithLimit(signalledFailure{Name: "x"}, 1024); !errors.Is(err, ErrEncode) {
		t.Fatalf("EncodeWithLimit() err = %v, want ErrEncode", err)
	}

	// Close blocks until queued events are delivered.
	listener.Close()

	severities := make(map[string][]capitan.Severity)
	for _, e := range capture.Events() {
		name := KeyTypeName.ExtractFromFields(e.Fields)
		severities[name] = append(severities[name], e.Severity)
	}

	if got := severities[items.typeName]; len(got) != 1 || got[0] != capitan.SeverityInfo {
		t.Errorf("%s events = %v, want one INFO (overflow reports through SignalLimitExceeded)", items.typeName, got)
	}
	if got := severities[failures.typeName]; len(got) != 1 || got[0] != capitan.SeverityError {
		t.Errorf("%s events = %v, want one ERROR", failures.typeName, got)
	}
}
