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
	"errors"
	"iter"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	// ErrNotFound: o item não existe (GetItem vazio ou condição
	// attribute_exists falhou em UpdateItem/DeleteItem).
	ErrNotFound = errors.New("dyndb: item not found")

	// ErrUnavailable: falha transitória do DynamoDB (throttling, limite de
	// requisições, erro 5xx ou timeout) que persistiu após os retries do SDK.
	ErrUnavailable = errors.New("dyndb: store unavailable")
)

// DynamoDBClient abstrai o cliente do SDK da AWS. *dynamodb.Client satisfaz
// esta interface e os testes usam um mock.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store é a interface principal e genérica para interagir com uma tabela.
//
// O tipo genérico `T` é o tipo Go que representa o item da tabela (struct
// com tags `dynamodbav` ou um map[string]any).
type Store[T any] interface {
	// Get busca o item por chave primária (sortKey é opcional).
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	// Put grava o item sem condição (upsert).
	Put(ctx context.Context, item T) error
	// Update altera um único atributo de um item existente e retorna os
	// atributos alterados (UPDATED_NEW).
	Update(ctx context.Context, hashKey, sortKey any, field string, value any) (map[string]any, error)
	// Delete remove um item existente e retorna a versão anterior (ALL_OLD).
	Delete(ctx context.Context, hashKey, sortKey any) (*T, error)
	// Scan percorre a tabela inteira, página a página, de forma preguiçosa.
	Scan(ctx context.Context) iter.Seq2[T, error]
}

// TableConfig contém a configuração da tabela associada ao Store.
//
// O tipo genérico `T` é usado apenas para inferência.
type TableConfig[T any] struct {
	TableName string `env:"DYNAMODB_TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY"`
	SortKey   string `env:"DYNAMODB_SORT_KEY"` // Opcional
	// ScanPageSize limita a quantidade de itens avaliados por chamada de
	// Scan. Zero deixa o limite a cargo do DynamoDB (1 MB por página).
	ScanPageSize int32 `env:"DYNAMODB_SCAN_PAGE_SIZE"`
}
