/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package commits

import (
	"strings"

	"dirpx.dev/dxsem/dxcore/config"
)

// Format renders one classification as a Markdown changelog bullet:
//
//	- description
//	- **scope:** description
//	- [BREAKING] **scope:** description (abc1234)
//
// The scope prefix appears only when the classification has a scope and
// opts.IncludeScope is set; the short commit id suffix only when
// opts.IncludeSHA is set and the source carries an identifier.
func Format(cl Classification, opts config.Changelog) string {
	var b strings.Builder
	b.WriteString("- ")
	if cl.Breaking {
		b.WriteString("[BREAKING] ")
	}
	if opts.IncludeScope && cl.Scope != "" {
		b.WriteString("**")
		b.WriteString(cl.Scope)
		b.WriteString(":** ")
	}
	b.WriteString(cl.Description)
	if opts.IncludeSHA && cl.ShortSHA() != "" {
		b.WriteString(" (")
		b.WriteString(cl.ShortSHA())
		b.WriteString(")")
	}
	return b.String()
}
