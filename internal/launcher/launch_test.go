package launcher

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/boards/internal/config"
)

func TestLaunch_QuitsOnKey(t *testing.T) {
	var out bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Launch(ctx, config.Default(),
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Launch() should return on q before the timeout")
	}
}

func TestLaunch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	// no input arrives, so only cancellation can stop the program
	r, w := io.Pipe()
	defer w.Close()

	err := Launch(ctx, config.Default(),
		tea.WithInput(r),
		tea.WithOutput(&bytes.Buffer{}),
		tea.WithoutRenderer(),
	)
	if err != nil {
		t.Fatalf("Launch() after cancel error = %v", err)
	}
}

func TestLaunch_BadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "cassandra"

	if err := Launch(context.Background(), cfg); err == nil {
		t.Fatal("Launch() with unknown backend should fail")
	}
}
