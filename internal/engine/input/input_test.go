package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{"window moved", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
		{
			"key down",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
			Event{Type: EventKeyDown, Key: sdl.SCANCODE_F12},
			true,
		},
		{
			"key repeat",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F12}},
			Event{},
			false,
		},
		{"key up", &sdl.KeyboardEvent{Type: sdl.KEYUP}, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convert(tt.event)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestShouldQuit(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   bool
	}{
		{"nothing", nil, false},
		{"window closed", []Event{{Type: EventQuit}}, true},
		{"escape", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE}}, true},
		{"q", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_Q}}, true},
		{"other key", []Event{{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &Input{events: tt.events}
			if got := in.ShouldQuit(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResized(t *testing.T) {
	in := &Input{events: []Event{
		{Type: EventWindowResize, Width: 640, Height: 480},
		{Type: EventKeyDown, Key: sdl.SCANCODE_A},
		{Type: EventWindowResize, Width: 1024, Height: 768},
	}}
	w, h, ok := in.Resized()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("expected last resize 1024x768, got %dx%d ok=%v", w, h, ok)
	}

	if _, _, ok := (&Input{}).Resized(); ok {
		t.Error("expected no resize without events")
	}
}
