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

// Package dyndb fornece uma abstração genérica e tipada sobre o AWS DynamoDB
// Go SDK (v2) para tabelas chave-valor.
//
// Visão Geral:
// A interface `Store[T]` expõe as cinco primitivas usadas pelo serviço:
// `Get` (leitura consistente por chave), `Put` (upsert), `Update` (SET de um
// único atributo, condicionado à existência do item), `Delete` (condicionado,
// devolvendo ALL_OLD) e `Scan` (iterador preguiçoso que segue o
// LastEvaluatedKey até o fim da tabela).
//
// Erros do SDK são normalizados em `ErrNotFound` e `ErrUnavailable`, que podem
// ser testados com errors.Is; o erro original continua na cadeia.
//
// Exemplo:
//
//	type Truck map[string]any
//
//	store := dyndb.New(client, dyndb.TableConfig[Truck]{
//		TableName: "trucks",
//		HashKey:   "truckId",
//	})
//
//	for truck, err := range store.Scan(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(truck["truckId"])
//	}
//
// Para testes, `MockStore[T]` implementa Store[T] com campos de função.
package dyndb
