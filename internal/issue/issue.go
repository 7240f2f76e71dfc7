// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	CommandTableInvalidId Id = iota + 1
	RegistryBuildFailedId
	LanguagePackNotFoundId
	LanguagePackInvalidId
	ConfigLoadFailedId
	InvalidShapeId
	InvalidChildId
	BlockNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal markdown with the given glamour
// style ("dark", "light", "notty", or a path to a style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range append(slices.Clone(i.docLinks), i.extLinks...) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	commandTableInvalidIssue = &Issue{
		id: CommandTableInvalidId,
		mdMsg: `
# The command table is invalid!

A block declaration does not match the command table schema.

## Common issues:
- A declaration without ` + "`spec`" + `, or with an empty one
- A ` + "`shape`" + ` outside hat, cap, stack, boolean, reporter, ring, cat
- An input type tag that does not start with ` + "`%`" + `
- Unknown field names (the schema is closed)

## Example declaration:
~~~cue
commands: [
  {id: "MOTION_MOVESTEPS", selector: "forward:", spec: "move %1 steps", inputs: ["%n"], shape: "stack", category: "motion"},
]
~~~`,
	}

	registryBuildFailedIssue = &Issue{
		id: RegistryBuildFailedId,
		mdMsg: `
# The block registry could not be built!

The command table decoded, but its declarations are inconsistent. The
registry is all-or-nothing, so no block can be resolved until this is fixed.

## Things you can check:
- Every block ID is unique (a missing ID becomes ` + "`sb2:<selector>`" + `)
- Every declaration has an ` + "`id`" + ` or a ` + "`selector`" + `
- Every category is built in or listed under ` + "`extensions`" + `
- Every alias, renamed block and translation names an existing ID`,
	}

	languagePackNotFoundIssue = &Issue{
		id: LanguagePackNotFoundId,
		mdMsg: `
# Language not found!

No embedded language pack has that code, and no configured pack file
declares it.

## Things you can try:
- List the available languages:
~~~
$ blockresolve languages
~~~

- Add your own pack to the config file:
~~~cue
language_packs: ["~/packs/sv.toml"]
~~~`,
	}

	languagePackInvalidIssue = &Issue{
		id: LanguagePackInvalidId,
		mdMsg: `
# Failed to load language pack!

A language pack is a TOML file with a ` + "`code`" + ` and a ` + "`name`" + `, and optional
` + "`commands`" + `, ` + "`aliases`" + `, ` + "`renamed_blocks`" + ` and ` + "`dropdowns`" + ` tables.

## Example pack:
~~~toml
code = "sv"
name = "Svenska"

[commands]
EVENT_WHENFLAGCLICKED = "när _ klickas"

[aliases]
"när flaggan klickas" = "EVENT_WHENFLAGCLICKED"
~~~

Keyword lists (` + "`math`" + `, ` + "`sound_effects`" + `, ` + "`microbit_when`" + `, ` + "`osis`" + `) left
out are taken from English.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show the effective configuration:
~~~
$ blockresolve config show
~~~

- Write a fresh default file:
~~~
$ blockresolve config init
~~~

- Override single values with environment variables, e.g.
  ` + "`BLOCKRESOLVE_LANGUAGE=de`" + `.`,
	}

	invalidShapeIssue = &Issue{
		id: InvalidShapeId,
		mdMsg: `
# Invalid shape!

The requested shape must be one of: hat, cap, stack, boolean, reporter, ring,
cat. Leave it empty to match any shape.`,
	}

	invalidChildIssue = &Issue{
		id: InvalidChildId,
		mdMsg: `
# Invalid block child!

Each argument of ` + "`resolve`" + ` is one child of the occurrence:

| Syntax | Child |
|---|---|
| ` + "`word`" + ` | label |
| ` + "`[text]`" + ` | string input |
| ` + "`[value v]`" + ` | dropdown input |
| ` + "`(10)`" + ` | number input |
| ` + "`<b>`" + ` | boolean input |
| ` + "`{block}`" + ` | nested reporter |
| ` + "`[#ff0000]`" + ` | colour input |`,
	}

	blockNotFoundIssue = &Issue{
		id: BlockNotFoundId,
		mdMsg: `
# Block not found!

No definition matches the hash of the occurrence, or every candidate was
ruled out by shape or by disambiguation rules.

## Things you can try:
- Compare the hashes:
~~~
$ blockresolve hash "move %1 steps"
~~~

- Drop ` + "`--shape`" + ` to match any shape
- Pass ` + "`--lang`" + ` for blocks written in another language`,
	}

	issues = map[Id]*Issue{
		commandTableInvalidIssue.Id():  commandTableInvalidIssue,
		registryBuildFailedIssue.Id():  registryBuildFailedIssue,
		languagePackNotFoundIssue.Id(): languagePackNotFoundIssue,
		languagePackInvalidIssue.Id():  languagePackInvalidIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		invalidShapeIssue.Id():         invalidShapeIssue,
		invalidChildIssue.Id():         invalidChildIssue,
		blockNotFoundIssue.Id():        blockNotFoundIssue,
	}
)

// Values returns every issue ordered by ID.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
