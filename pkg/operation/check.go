// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"fmt"
)

// ✅ Check validates the mapping table without touching any file. The
// returned error carries the complete set of offending keys, so the
// operator can fix every duplicate in one sitting.
func (o *Operator) Check(ctx context.Context) error {
	_, err := o.config.Table()

	if o.userLogger != nil {
		if err != nil {
			o.userLogger.LogValidation(false, "Mapping table is invalid", err)
		} else {
			mode := "forward-only"
			if o.config.Reversible {
				mode = "reversible"
			}
			o.userLogger.LogValidation(true, fmt.Sprintf("Mapping table is valid (%d entries, %s)", len(o.config.Mapping), mode), nil)
		}
	}

	return err
}
