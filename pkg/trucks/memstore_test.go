// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package trucks

import (
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/raywall/trucks-service/dyndb"
)

// newMemoryStore simula a tabela com um map, respeitando as mesmas regras do
// DynamoDB: Put sobrescreve, Update/Delete exigem que o item exista.
func newMemoryStore() *dyndb.MockStore[Record] {
	table := map[string]Record{}

	return &dyndb.MockStore[Record]{
		GetFn: func(_ context.Context, hashKey, _ any) (*Record, error) {
			rec, ok := table[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			out := maps.Clone(rec)
			return &out, nil
		},
		PutFn: func(_ context.Context, item Record) error {
			id, _ := item.ID()
			table[id] = maps.Clone(item)
			return nil
		},
		UpdateFn: func(_ context.Context, hashKey, _ any, field string, value any) (map[string]any, error) {
			rec, ok := table[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			rec[field] = value
			return map[string]any{field: value}, nil
		},
		DeleteFn: func(_ context.Context, hashKey, _ any) (*Record, error) {
			rec, ok := table[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			delete(table, hashKey.(string))
			return &rec, nil
		},
		ScanFn: func(_ context.Context) iter.Seq2[Record, error] {
			items := make([]Record, 0, len(table))
			for _, id := range slices.Sorted(maps.Keys(table)) {
				items = append(items, maps.Clone(table[id]))
			}
			return dyndb.Items(items...)
		},
	}
}
