// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	"github.com/sbtools/blockresolve/pkg/language"
)

// LoadBuiltin builds a registry from the embedded command table and the
// default rules. The English table is always indexed; langs add more.
func LoadBuiltin(langs ...*language.Table) (*Registry, error) {
	table, err := LoadDeclarations()
	if err != nil {
		return nil, err
	}
	english := language.English()
	all := append([]*language.Table{english}, langs...)
	return Build(table, DefaultRules(english), all...)
}
