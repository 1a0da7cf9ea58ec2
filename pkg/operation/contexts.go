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

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/remaprc/pkg/rewrite"
)

// 🔍 Contexts runs the context-discovery diagnostic for fragment over
// every resolved payload file, aggregating results in order of first
// appearance across files, deduplicated. Payload files are only read,
// never written.
func (o *Operator) Contexts(ctx context.Context, fragment string, explicit []string) ([]string, error) {
	files, err := o.resolveFiles(ctx, explicit)
	if err != nil {
		return nil, errors.Errorf("resolving payload files: %w", err)
	}

	var contexts []string
	seen := make(map[string]struct{})
	for _, file := range files {
		content, err := o.statusMgr.ReadFile(ctx, file)
		if err != nil {
			return nil, errors.Errorf("reading %s: %w", file, err)
		}

		for _, c := range rewrite.FindContexts(fragment, string(content)) {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			contexts = append(contexts, c)
		}
	}

	return contexts, nil
}
