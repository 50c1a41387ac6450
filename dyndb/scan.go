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
	"fmt"
	"iter"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Scan devolve um iterador sobre todos os itens da tabela.
//
// As páginas são buscadas sob demanda e em sequência: cada chamada usa o
// LastEvaluatedKey da anterior como ExclusiveStartKey, até o DynamoDB não
// devolver mais chave. Interromper o range interrompe a paginação.
// Um erro é entregue uma única vez e encerra a iteração.
func (s *dynamoStore[T]) Scan(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		var startKey map[string]types.AttributeValue

		for {
			if err := ctx.Err(); err != nil {
				yield(zero, classify("scan", err))
				return
			}

			out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
				TableName:         aws.String(s.cfg.TableName),
				ExclusiveStartKey: startKey,
				Limit:             s.pageSize(),
			})
			if err != nil {
				yield(zero, classify("scan", err))
				return
			}

			for _, av := range out.Items {
				var item T
				if err := attributevalue.UnmarshalMap(av, &item); err != nil {
					yield(zero, fmt.Errorf("dyndb: unmarshal failed: %w", err))
					return
				}
				if !yield(item, nil) {
					return
				}
			}

			if len(out.LastEvaluatedKey) == 0 {
				return
			}
			startKey = out.LastEvaluatedKey
		}
	}
}

func (s *dynamoStore[T]) pageSize() *int32 {
	if s.cfg.ScanPageSize <= 0 {
		return nil
	}
	return aws.Int32(s.cfg.ScanPageSize)
}

// ScanAll drena o Scan do store para um slice. Tabela vazia resulta em slice
// vazio (nunca nil), na ordem devolvida pelo DynamoDB.
func ScanAll[T any](ctx context.Context, store Store[T]) ([]T, error) {
	items := make([]T, 0)
	for item, err := range store.Scan(ctx) {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
