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

package transport

import (
	"context"
	"iter"
	"maps"
	"slices"

	"github.com/raywall/trucks-service/dyndb"
	"github.com/raywall/trucks-service/pkg/trucks"
)

// tableStore é uma tabela em memória com a semântica condicional do DynamoDB
type tableStore struct {
	items map[string]trucks.Record
	calls []string
}

func newTableStore(seed ...trucks.Record) *tableStore {
	s := &tableStore{items: map[string]trucks.Record{}}
	for _, rec := range seed {
		id, _ := rec.ID()
		s.items[id] = rec
	}
	return s
}

func (s *tableStore) mock() *dyndb.MockStore[trucks.Record] {
	return &dyndb.MockStore[trucks.Record]{
		GetFn: func(_ context.Context, hashKey, _ any) (*trucks.Record, error) {
			s.calls = append(s.calls, "get")
			rec, ok := s.items[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			out := maps.Clone(rec)
			return &out, nil
		},
		PutFn: func(_ context.Context, item trucks.Record) error {
			s.calls = append(s.calls, "put")
			id, _ := item.ID()
			s.items[id] = maps.Clone(item)
			return nil
		},
		UpdateFn: func(_ context.Context, hashKey, _ any, field string, value any) (map[string]any, error) {
			s.calls = append(s.calls, "update")
			rec, ok := s.items[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			rec[field] = value
			return map[string]any{field: value}, nil
		},
		DeleteFn: func(_ context.Context, hashKey, _ any) (*trucks.Record, error) {
			s.calls = append(s.calls, "delete")
			rec, ok := s.items[hashKey.(string)]
			if !ok {
				return nil, dyndb.ErrNotFound
			}
			delete(s.items, hashKey.(string))
			return &rec, nil
		},
		ScanFn: func(_ context.Context) iter.Seq2[trucks.Record, error] {
			s.calls = append(s.calls, "scan")
			out := make([]trucks.Record, 0, len(s.items))
			for _, id := range slices.Sorted(maps.Keys(s.items)) {
				out = append(out, maps.Clone(s.items[id]))
			}
			return dyndb.Items(out...)
		},
	}
}

func newTestRouter(store *tableStore) *Router {
	return NewRouter(trucks.NewService(store.mock()))
}
