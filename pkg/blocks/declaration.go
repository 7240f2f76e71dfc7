// SPDX-License-Identifier: MPL-2.0

package blocks

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/sbtools/blockresolve/pkg/cueutil"
)

var (
	//go:embed commands_schema.cue
	commandsSchema []byte

	//go:embed commands.cue
	builtinCommands []byte
)

type (
	// Declaration is one entry of the static command table.
	Declaration struct {
		// ID is the block's identifier. When empty it is synthesized from
		// the selector as "sb2:<selector>".
		ID ID `json:"id,omitempty"`
		// Selector is the serialization key. When empty it is synthesized
		// from the ID as "sb3:<id>".
		Selector string `json:"selector,omitempty"`
		// Spec is the canonical English spec ("move %1 steps").
		Spec string `json:"spec"`
		// Inputs lists the type tag of each input slot ("%n", "%m.effect").
		Inputs []string `json:"inputs,omitempty"`
		// Shape is the structural class of the block.
		Shape Shape `json:"shape"`
		// Category is the semantic group of the block.
		Category Category `json:"category"`
		// HasLoopArrow marks looping control blocks.
		HasLoopArrow bool `json:"hasLoopArrow,omitempty"`
	}

	// CommandTable is a decoded command table document.
	CommandTable struct {
		// Extensions maps each extension category to its display name.
		Extensions map[string]string `json:"extensions,omitempty"`
		// AliasExtensions maps alternative extension names to the
		// extension category they stand for.
		AliasExtensions map[string]string `json:"aliasExtensions,omitempty"`
		// Commands are the block declarations. Their order is the order in
		// which colliding definitions are considered by Resolve.
		Commands []Declaration `json:"commands"`
	}
)

// LoadDeclarations decodes the embedded command table.
func LoadDeclarations() (*CommandTable, error) {
	return ParseDeclarations(builtinCommands, "commands.cue")
}

// ReadDeclarations reads and decodes a command table file.
func ReadDeclarations(path string) (*CommandTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command table at %s: %w", path, err)
	}
	return ParseDeclarations(data, path)
}

// ParseDeclarations validates CUE command table content against the
// embedded schema and decodes it. Errors carry the file name and the path
// of the offending field ("commands[12].shape").
func ParseDeclarations(data []byte, filename string) (*CommandTable, error) {
	result, err := cueutil.Decode[CommandTable](
		commandsSchema,
		data,
		"#CommandTable",
		cueutil.WithFilename(filename),
	)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}
