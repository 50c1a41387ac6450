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

package dyndb

import (
	"context"
	"iter"
)

// MockStore é um mock da interface Store[T] baseado em campos de função.
//
// Campos não definidos têm comportamento neutro: Get, Update e Delete retornam
// ErrNotFound, Put não faz nada e Scan não produz itens.
type MockStore[T any] struct {
	GetFn    func(ctx context.Context, hashKey, sortKey any) (*T, error)
	PutFn    func(ctx context.Context, item T) error
	UpdateFn func(ctx context.Context, hashKey, sortKey any, field string, value any) (map[string]any, error)
	DeleteFn func(ctx context.Context, hashKey, sortKey any) (*T, error)
	ScanFn   func(ctx context.Context) iter.Seq2[T, error]
}

func (m *MockStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, hashKey, sortKey)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Put(ctx context.Context, item T) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, item)
	}
	return nil
}

func (m *MockStore[T]) Update(ctx context.Context, hashKey, sortKey any, field string, value any) (map[string]any, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, hashKey, sortKey, field, value)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Delete(ctx context.Context, hashKey, sortKey any) (*T, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, hashKey, sortKey)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Scan(ctx context.Context) iter.Seq2[T, error] {
	if m.ScanFn != nil {
		return m.ScanFn(ctx)
	}
	return Items[T]()
}

// Items monta um iterador de Scan a partir de itens fixos, útil em testes.
func Items[T any](items ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}
