package exampleboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func postJSON(t *testing.T, url string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s error = %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestWithSelectCallback_InvokedOnMenuSelection(t *testing.T) {
	events := make(chan SelectEvent, 4)

	eb, err := New(
		WithSections(testSections(t)...),
		WithPort(19201),
		WithSelectCallback(func(ev SelectEvent) { events <- ev }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- eb.Start(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	waitForServer(t, 19201)
	base := fmt.Sprintf("http://localhost:%d", 19201)

	var session struct {
		ID string `json:"id"`
	}
	if code := postJSON(t, base+"/api/sessions", map[string]string{"appId": "hello-world"}, &session); code != http.StatusCreated {
		t.Fatalf("create session status = %d", code)
	}

	var selected struct {
		Navigation struct {
			ReplacePath string `json:"replacePath"`
		} `json:"navigation"`
	}
	url := base + "/api/sessions/" + session.ID + "/select"
	if code := postJSON(t, url, map[string]string{"appId": "counter"}, &selected); code != http.StatusOK {
		t.Fatalf("select status = %d", code)
	}
	if selected.Navigation.ReplacePath != "/examples/counter" {
		t.Errorf("ReplacePath = %q, want %q", selected.Navigation.ReplacePath, "/examples/counter")
	}

	select {
	case ev := <-events:
		if ev.SessionID != session.ID {
			t.Errorf("SessionID = %q, want %q", ev.SessionID, session.ID)
		}
		if ev.PreviousAppID != "hello-world" || ev.AppID != "counter" {
			t.Errorf("selection = %q -> %q, want hello-world -> counter", ev.PreviousAppID, ev.AppID)
		}
		if !ev.Found {
			t.Error("Found = false, want true")
		}
		if ev.At.IsZero() {
			t.Error("At should not be zero")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for select callback")
	}

	// selecting the same app again is not a change
	postJSON(t, url, map[string]string{"appId": "counter"}, nil)
	select {
	case ev := <-events:
		t.Errorf("unexpected callback for unchanged selection: %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
