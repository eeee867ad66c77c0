package testutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("https://random-d.uk/api/1.jpg")
			return nil
		})

		if output != "https://random-d.uk/api/1.jpg\n" {
			t.Errorf("unexpected output: %q", output)
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		orig := os.Stdout
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return errors.New("test error")
		})

		if !strings.Contains(output, "output before error") {
			t.Errorf("expected output before error, got: %q", output)
		}
		if os.Stdout != orig {
			t.Error("stdout was not restored")
		}
	})

	t.Run("empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error { return nil })
		if output != "" {
			t.Errorf("expected empty output, got: %q", output)
		}
	})
}

func TestJSONServer(t *testing.T) {
	server := JSONServer(t, http.StatusTeapot, `{"url":"x"}`)

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type %q", got)
	}
	if string(body) != `{"url":"x"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestRefusedEndpoint(t *testing.T) {
	endpoint := RefusedEndpoint(t)
	if !strings.HasPrefix(endpoint, "http://127.0.0.1:") {
		t.Fatalf("unexpected endpoint %q", endpoint)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(endpoint)
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected connection to be refused")
	}
}

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("inner", func(t *testing.T) {
		dir = TempDir(t)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory at %s: %v", dir, err)
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat err: %v", dir, err)
	}
}
