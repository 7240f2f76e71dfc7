// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"
)

func TestCategorySwatch(t *testing.T) {
	t.Parallel()

	for c := range categoryColors {
		if got := categorySwatch(c); !strings.HasSuffix(got, " "+c.String()) {
			t.Errorf("categorySwatch(%s) = %q", c, got)
		}
	}
	if got := swatch("", "none"); !strings.HasSuffix(got, " none") {
		t.Errorf("swatch with empty colour = %q", got)
	}
}
