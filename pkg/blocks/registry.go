// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/sbtools/blockresolve/pkg/blockspec"
	"github.com/sbtools/blockresolve/pkg/language"
)

// Registry is the immutable set of block definitions, their hash index and
// the rules consulted by Resolve. All methods are safe for concurrent use.
type Registry struct {
	defs       []*Definition
	byID       map[ID]*Definition
	byHash     map[string][]*Definition
	extensions map[string]string
	aliasExt   map[string]string
	rules      *RuleSet
	reference  *language.Table
	languages  []string
}

// Build validates the command table and constructs a registry from it.
//
// Declarations are registered in table order. Each language table then
// contributes its translated specs (in declaration order) followed by its
// aliases and renamed specs (sorted by spec); each is hashed and appended to
// the bucket of the block it names. Rules are checked against the final ID
// table. Any error aborts the build and no registry is returned.
//
// The first language table whose code is English becomes the reference
// table Resolve uses when called without one; without any, the embedded
// English table is used.
func Build(table *CommandTable, rules *RuleSet, langs ...*language.Table) (*Registry, error) {
	if table == nil {
		table = &CommandTable{}
	}

	r := &Registry{
		defs:       make([]*Definition, 0, len(table.Commands)),
		byID:       make(map[ID]*Definition, len(table.Commands)),
		byHash:     make(map[string][]*Definition, len(table.Commands)),
		extensions: maps.Clone(table.Extensions),
		aliasExt:   maps.Clone(table.AliasExtensions),
		rules:      rules.clone(),
	}

	for alias, target := range table.AliasExtensions {
		if _, ok := table.Extensions[target]; !ok {
			return nil, fmt.Errorf("alias extension %q names unknown extension %q: %w", alias, target, ErrInvalidCategory)
		}
	}

	firstIndex := make(map[ID]int, len(table.Commands))
	for i, decl := range table.Commands {
		def, err := newDefinition(i, decl)
		if err != nil {
			return nil, err
		}
		if !r.isDeclarableCategory(def.category) {
			return nil, &InvalidCategoryError{Value: def.category, ID: def.id}
		}
		if prev, dup := firstIndex[def.id]; dup {
			return nil, &DuplicateIDError{ID: def.id, First: prev, Second: i}
		}
		firstIndex[def.id] = i
		r.byID[def.id] = def
		r.defs = append(r.defs, def)
		r.index(def.hash, def)
	}

	if err := r.rules.validate(r.byID); err != nil {
		return nil, err
	}

	for _, lang := range langs {
		if lang == nil {
			continue
		}
		if err := r.addLanguage(lang); err != nil {
			return nil, err
		}
	}
	if r.reference == nil {
		r.reference = language.English()
	}

	slog.Debug("built block registry",
		"definitions", len(r.defs),
		"hashes", len(r.byHash),
		"collisions", len(r.Collisions()),
		"languages", strings.Join(r.languages, ","))
	return r, nil
}

func newDefinition(index int, decl Declaration) (*Definition, error) {
	id, selector := decl.ID, decl.Selector
	if id == "" {
		if selector == "" {
			return nil, &MissingIDError{Spec: decl.Spec, Index: index}
		}
		id = ID("sb2:" + selector)
	}
	if strings.TrimSpace(decl.Spec) == "" {
		return nil, &MissingSpecError{ID: id}
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if selector == "" {
		selector = "sb3:" + string(id)
	}
	if err := decl.Shape.Validate(); err != nil {
		return nil, &InvalidShapeError{Value: decl.Shape, ID: id}
	}

	return &Definition{
		id:           id,
		spec:         decl.Spec,
		parts:        blockspec.Tokenize(decl.Spec),
		selector:     selector,
		inputs:       slices.Clone(decl.Inputs),
		shape:        decl.Shape,
		category:     decl.Category,
		hasLoopArrow: decl.HasLoopArrow,
		hash:         blockspec.HashSpec(decl.Spec),
	}, nil
}

// addLanguage indexes the specs of one language table.
func (r *Registry) addLanguage(lang *language.Table) error {
	for _, def := range r.defs {
		if spec, ok := lang.Commands[string(def.id)]; ok {
			r.index(blockspec.HashSpec(spec), def)
		}
	}
	for _, id := range sortedKeys(lang.Commands) {
		if _, ok := r.byID[ID(id)]; !ok {
			return &UnknownIDError{ID: ID(id), Source: "commands in language " + lang.Code}
		}
	}

	for _, group := range []struct {
		name    string
		entries map[string]string
	}{
		{"aliases", lang.Aliases},
		{"renamed_blocks", lang.RenamedBlocks},
	} {
		for _, spec := range sortedKeys(group.entries) {
			id := ID(group.entries[spec])
			def, ok := r.byID[id]
			if !ok {
				return &UnknownIDError{ID: id, Source: fmt.Sprintf("%s in language %s", group.name, lang.Code)}
			}
			r.index(blockspec.HashSpec(spec), def)
		}
	}

	if r.reference == nil && lang.Code == language.EnglishCode {
		r.reference = lang.Clone()
	}
	r.languages = append(r.languages, lang.Code)
	return nil
}

// index appends def to the bucket for hash unless it is already there.
func (r *Registry) index(hash string, def *Definition) {
	bucket := r.byHash[hash]
	if slices.Contains(bucket, def) {
		return
	}
	r.byHash[hash] = append(bucket, def)
}

func (r *Registry) isDeclarableCategory(c Category) bool {
	if c.IsBuiltin() {
		return true
	}
	_, ok := r.extensions[string(c)]
	return ok
}

// Lookup returns the definition with the given ID.
func (r *Registry) Lookup(id ID) (*Definition, bool) {
	def, ok := r.byID[id]
	return def, ok
}

// Bucket returns the definitions indexed under hash, in registration order.
func (r *Registry) Bucket(hash string) []*Definition {
	return slices.Clone(r.byHash[hash])
}

// Definitions returns every definition in declaration order.
func (r *Registry) Definitions() []*Definition {
	return slices.Clone(r.defs)
}

// Len returns the number of definitions.
func (r *Registry) Len() int { return len(r.defs) }

// Languages returns the codes of the language tables indexed by Build.
func (r *Registry) Languages() []string { return slices.Clone(r.languages) }

// Reference returns a copy of the language table Resolve uses by default.
func (r *Registry) Reference() *language.Table { return r.reference.Clone() }

// Extensions returns the extension categories and their display names.
func (r *Registry) Extensions() map[string]string { return maps.Clone(r.extensions) }

// Categories returns every category keyword ApplyOverrides accepts: the
// built-in categories, then the extensions and extension aliases sorted by
// name.
func (r *Registry) Categories() []Category {
	out := BuiltinCategories()
	for _, name := range sortedKeys(r.extensions) {
		out = append(out, Category(name))
	}
	for _, name := range sortedKeys(r.aliasExt) {
		out = append(out, Category(name))
	}
	return out
}

// IsCategory reports whether name is a category keyword.
func (r *Registry) IsCategory(name string) bool {
	if Category(name).IsBuiltin() {
		return true
	}
	if _, ok := r.extensions[name]; ok {
		return true
	}
	_, ok := r.aliasExt[name]
	return ok
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
