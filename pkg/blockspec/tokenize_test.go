// SPDX-License-Identifier: MPL-2.0

package blockspec

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []Token
	}{
		{
			name: "labels and numbered inputs",
			spec: "move %1 steps",
			want: []Token{Label("move"), Input("%1"), Label("steps")},
		},
		{
			name: "icon reference",
			spec: "when @greenFlag clicked",
			want: []Token{Label("when"), Icon("@greenFlag"), Label("clicked")},
		},
		{
			name: "typed inputs",
			spec: "set %m.effect effect to %n",
			want: []Token{Label("set"), Input("%m.effect"), Label("effect"), Label("to"), Input("%n")},
		},
		{
			name: "whitespace runs are dropped",
			spec: "  say   %1\tfor %2  secs  ",
			want: []Token{Label("say"), Input("%1"), Label("for"), Input("%2"), Label("secs")},
		},
		{
			name: "adjacent tokens without whitespace",
			spec: "a%1b@turnLeft",
			want: []Token{Label("a"), Input("%1"), Label("b"), Icon("@turnLeft")},
		},
		{
			name: "punctuation stays in labels",
			spec: "key %1 pressed?",
			want: []Token{Label("key"), Input("%1"), Label("pressed?")},
		},
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "whitespace only",
			spec: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.spec)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	t.Parallel()

	spec := "switch costume to %1 and wait @turnRight"
	first := Tokenize(spec)
	for range 10 {
		if got := Tokenize(spec); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize(%q) changed between calls: %v vs %v", spec, got, first)
		}
	}
}

func TestInputToken(t *testing.T) {
	t.Parallel()

	tok := Input("%m.effect")
	if tok.Type != "m.effect" {
		t.Errorf("Type = %q, want %q", tok.Type, "m.effect")
	}
	if tok.Ordinal != 0 {
		t.Errorf("Ordinal = %d, want 0", tok.Ordinal)
	}

	tok = Input("%3")
	if tok.Type != "3" || tok.Ordinal != 3 {
		t.Errorf("Input(%%3) = %+v, want Type 3 Ordinal 3", tok)
	}
}

func TestInputNumber(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"%1":    1,
		"%2":    2,
		"%n":    0,
		"steps": 0,
		"%b":    0,
	}
	for part, want := range tests {
		if got := InputNumber(part); got != want {
			t.Errorf("InputNumber(%q) = %d, want %d", part, got, want)
		}
	}
}

func TestParseSpec(t *testing.T) {
	t.Parallel()

	p := ParseSpec("repeat %1 %2")
	if len(p.Parts) != 3 {
		t.Fatalf("len(Parts) = %d, want 3", len(p.Parts))
	}
	if !reflect.DeepEqual(p.Inputs, []string{"%1", "%2"}) {
		t.Errorf("Inputs = %v, want [%%1 %%2]", p.Inputs)
	}
	if p.Hash != "repeat _ _" {
		t.Errorf("Hash = %q, want %q", p.Hash, "repeat _ _")
	}
}

func TestIsInputPlaceholder(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"%1", "%n", "%m.list"} {
		if !IsInputPlaceholder(s) {
			t.Errorf("IsInputPlaceholder(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "%", "a%1", "%1 ", "@greenFlag"} {
		if IsInputPlaceholder(s) {
			t.Errorf("IsInputPlaceholder(%q) = true, want false", s)
		}
	}
}

func TestIconGlyph(t *testing.T) {
	t.Parallel()

	if g, ok := IconGlyph("@greenFlag"); !ok || g != "⚑" {
		t.Errorf("IconGlyph(@greenFlag) = %q, %v", g, ok)
	}
	if g, ok := IconGlyph("turnLeft"); !ok || g != "↺" {
		t.Errorf("IconGlyph(turnLeft) = %q, %v", g, ok)
	}
	if _, ok := IconGlyph("@rocket"); ok {
		t.Error("IconGlyph(@rocket) should not be found")
	}
}

func TestTokenKindString(t *testing.T) {
	t.Parallel()

	if KindLabel.String() != "label" || KindInput.String() != "input" || KindIcon.String() != "icon" {
		t.Error("unexpected kind names")
	}
	if Icon("@turnRight").IconName() != "turnRight" {
		t.Error("IconName should strip the at-sign")
	}
	if Label("x").IconName() != "" {
		t.Error("IconName of a label should be empty")
	}
}
