// SPDX-License-Identifier: MPL-2.0

package blocks

import "github.com/sbtools/blockresolve/pkg/language"

var languageFixture = language.Table{
	Code:         "en",
	Name:         "English",
	Math:         []string{"abs", "sqrt"},
	SoundEffects: []string{"pitch", "pan left/right"},
	MicrobitWhen: []string{"moved", "shaken", "jumped"},
	Osis:         []string{"other scripts in sprite", "other scripts in stage"},
}
