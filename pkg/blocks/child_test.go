// SPDX-License-Identifier: MPL-2.0

package blocks_test

import (
	"testing"

	bt "github.com/sbtools/blockresolve/internal/testutil/blockstest"
	"github.com/sbtools/blockresolve/pkg/blocks"
	"github.com/sbtools/blockresolve/pkg/blockspec"
)

func TestRuntimeHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		children []blocks.Child
		spec     string
	}{
		{"inputs become placeholders", bt.Children(bt.Label("move"), bt.Number("10"), bt.Label("steps")), "move %1 steps"},
		{"nested blocks become placeholders", bt.Children(bt.Labels("say"), bt.Reporter()), "say %1"},
		{"punctuation labels vanish", bt.Children(bt.Labels("go", "to", "x:"), bt.Number("0"), bt.Label("y:"), bt.Number("0")), "go to x: %1 y: %2"},
		{"case folds", bt.Labels("If", "On", "Edge,", "Bounce"), "if on edge, bounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got, want := blocks.RuntimeHash(tt.children), blockspec.HashSpec(tt.spec); got != want {
				t.Errorf("RuntimeHash() = %q, want %q", got, want)
			}
		})
	}
}

func TestBlockName(t *testing.T) {
	t.Parallel()

	if got, ok := blocks.BlockName(bt.Labels("my", "custom", "block")); !ok || got != "my custom block" {
		t.Errorf("BlockName(labels) = %q, %v", got, ok)
	}
	if _, ok := blocks.BlockName(bt.Children(bt.Label("jump"), bt.Number("10"))); ok {
		t.Error("BlockName() with an input should report false")
	}
	if got, ok := blocks.BlockName(nil); !ok || got != "" {
		t.Errorf("BlockName(nil) = %q, %v", got, ok)
	}
}

func TestChild_IsDropdown(t *testing.T) {
	t.Parallel()

	if !bt.Dropdown("x").IsDropdown() {
		t.Error("Dropdown child should report IsDropdown")
	}
	if (blocks.Child{Shape: "dropdown"}).IsDropdown() {
		t.Error("a non-input child is never a dropdown input")
	}
}
