package game

import (
	"reflect"
	"testing"

	"equity-trainer/server/engine"
)

func boardOf(t *testing.T, tokens ...string) []engine.Card {
	t.Helper()
	cards, err := engine.ParseCards(tokens)
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return cards
}

func TestTextureTags(t *testing.T) {
	cases := []struct {
		board []string
		want  []string
	}{
		{[]string{"Ah", "Kh", "2h"}, []string{"monotone"}},
		{[]string{"Ah", "Kh", "2c"}, []string{"two_tone"}},
		{[]string{"Ah", "Kd", "2c"}, nil},
		{[]string{"8h", "8d", "2c"}, []string{"two_tone", "paired"}},
		{[]string{"9h", "8d", "7c"}, []string{"connected"}},
		{[]string{"9h", "8d", "5c"}, []string{"connected"}}, // span of 4
		{[]string{"9h", "8d", "4c"}, nil},                   // span of 5
		{[]string{"6h", "6d", "6c"}, []string{"paired", "connected"}},
		{[]string{"Th", "9h", "8h", "8d"}, []string{"monotone", "paired", "connected"}},
		{[]string{"Ah", "Kh", "Qh", "Jh", "Th"}, []string{"monotone", "connected"}},
	}
	for _, c := range cases {
		got := TextureTags(boardOf(t, c.board...))
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("TextureTags(%v) = %v, want %v", c.board, got, c.want)
		}
	}
}

func TestTextureTagsShortBoards(t *testing.T) {
	if got := TextureTags(nil); got != nil {
		t.Fatalf("empty board tagged %v", got)
	}
	if got := TextureTags(boardOf(t, "Ah", "Kh")); got != nil {
		t.Fatalf("two-card board tagged %v", got)
	}
}
