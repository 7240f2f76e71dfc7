// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func withPlainRender(t *testing.T) {
	t.Helper()
	original := render
	render = func(in string, _ string) (string, error) { return in, nil }
	t.Cleanup(func() { render = original })
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		contains string
	}{
		{CommandTableInvalidId, "command table is invalid"},
		{RegistryBuildFailedId, "registry could not be built"},
		{LanguagePackNotFoundId, "Language not found"},
		{LanguagePackInvalidId, "Failed to load language pack"},
		{ConfigLoadFailedId, "Failed to load configuration"},
		{InvalidShapeId, "Invalid shape"},
		{InvalidChildId, "Invalid block child"},
		{BlockNotFoundId, "Block not found"},
	}

	for _, tt := range tests {
		t.Run(tt.contains, func(t *testing.T) {
			issue := Get(tt.id)
			if issue == nil {
				t.Fatalf("Get(%d) returned nil", tt.id)
			}
			if issue.Id() != tt.id {
				t.Errorf("Id() = %d, want %d", issue.Id(), tt.id)
			}
			if !strings.Contains(string(issue.MarkdownMsg()), tt.contains) {
				t.Errorf("Get(%d).MarkdownMsg() should contain %q", tt.id, tt.contains)
			}
		})
	}

	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}

func TestValues(t *testing.T) {
	issues := Values()
	if len(issues) != len(Values()) || len(issues) != 8 {
		t.Fatalf("Values() returned %d issues, want 8", len(issues))
	}
	for i, issue := range issues {
		if issue.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want ordered IDs", i, issue.Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	withPlainRender(t)

	withLinks := &Issue{
		id:       Id(9999),
		mdMsg:    "# Test Issue",
		docLinks: []HttpLink{"https://docs.example.com"},
		extLinks: []HttpLink{"https://external.example.com"},
	}
	rendered, err := withLinks.Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"See also", "https://docs.example.com", "https://external.example.com"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() missing %q:\n%s", want, rendered)
		}
	}

	noLinks := &Issue{id: Id(9998), mdMsg: "# Test Issue"}
	rendered, err = noLinks.Render("")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(rendered, "See also") {
		t.Error("Render() without links should not contain 'See also'")
	}
}

func TestIssue_LinksAreCopies(t *testing.T) {
	issue := &Issue{docLinks: []HttpLink{"a"}, extLinks: []HttpLink{"b"}}
	issue.DocLinks()[0] = "changed"
	issue.ExtLinks()[0] = "changed"
	if issue.docLinks[0] != "a" || issue.extLinks[0] != "b" {
		t.Error("DocLinks()/ExtLinks() should return clones")
	}
}

func TestAllIssuesRenderWithGlamour(t *testing.T) {
	for _, issue := range Values() {
		rendered, err := issue.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", issue.Id(), err)
		}
		if strings.TrimSpace(rendered) == "" {
			t.Errorf("issue %d rendered to an empty string", issue.Id())
		}
	}
}
