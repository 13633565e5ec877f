//go:build !windows

package watch

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestCommand_StopsHostAfterSentinel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The host keeps running after printing the sentinel, like a headless
	// browser would.
	script := `echo "0 specs, 0 failures in 0s."; echo ""; echo "ConsoleReporter finished"; sleep 30`

	var echo bytes.Buffer
	start := time.Now()
	result, err := Command(ctx, "sh", []string{"-c", script}, &echo, nil)
	if err != nil {
		t.Fatalf("Command() error = %v", err)
	}
	if !result.Passed() {
		t.Errorf("result = %+v, want passed", result)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Command() took %v, want host stopped promptly", elapsed)
	}
}

func TestCommand_HostExitsWithoutSentinel(t *testing.T) {
	result, err := Command(context.Background(), "sh", []string{"-c", "echo Starting...; exit 3"}, nil, nil)
	if err == nil {
		t.Fatal("Command() expected error when host exits without sentinel")
	}
	if result.Finished {
		t.Error("Finished = true, want false")
	}
}

func TestCommand_MissingBinary(t *testing.T) {
	if _, err := Command(context.Background(), "conreport-no-such-binary", nil, nil, nil); err == nil {
		t.Error("Command() expected error for missing binary")
	}
}
