package bot

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestCleanupStack_RunsInReverseOrder(t *testing.T) {
	var order []string
	c := newCleanupStack(log.New(&bytes.Buffer{}, "", 0), "[JOB test]")
	for _, op := range []string{"session", "status", "files"} {
		c.Push(op, func() error {
			order = append(order, op)
			return nil
		})
	}

	c.Run()

	if got := strings.Join(order, ","); got != "files,status,session" {
		t.Errorf("order = %s", got)
	}
}

func TestCleanupStack_FailuresAreLoggedAndSkipped(t *testing.T) {
	var buf bytes.Buffer
	ran := false
	c := newCleanupStack(log.New(&buf, "", 0), "[JOB test]")
	c.Push("last", func() error {
		ran = true
		return nil
	})
	c.Push("panics", func() error { panic("bad handle") })
	c.Push("fails", func() error { return errors.New("permission denied") })

	c.Run()

	if !ran {
		t.Error("remaining actions must still run")
	}
	out := buf.String()
	if !strings.Contains(out, "cleanup fails: permission denied") {
		t.Errorf("log missing failure: %q", out)
	}
	if !strings.Contains(out, "cleanup panics: panic: bad handle") {
		t.Errorf("log missing panic: %q", out)
	}
}

func TestCleanupStack_RunTwiceIsNoop(t *testing.T) {
	calls := 0
	c := newCleanupStack(log.New(&bytes.Buffer{}, "", 0), "")
	c.Push("once", func() error {
		calls++
		return nil
	})

	c.Run()
	c.Run()

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
