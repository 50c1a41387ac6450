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

// Package trucksservice é um handler HTTP serverless para o CRUD de trucks
// sobre uma tabela DynamoDB.
//
// Visão Geral:
// O serviço recebe eventos do API Gateway (ou requisições HTTP quando
// executado localmente), resolve a rota pelo par método+path e executa uma
// das operações sobre a tabela de trucks, sempre respondendo JSON.
//
// Rotas:
//
//	GET    /trucks     stub, 200 sem body
//	GET    /truckId    busca por ?truckId=
//	GET    /allTrucks  scan paginado de toda a tabela
//	POST   /truckId    cria (ou sobrescreve) o truck do body
//	PATCH  /truckId    altera um único campo: {truckId, updateKey, updateValue}
//	DELETE /truckId    remove o truck {truckId}
//
// Qualquer outra combinação responde 404 UnmatchedRoute. Erros sempre seguem
// o formato {"error": <tipo>, "message": <detalhe>}.
//
// Sub-Pacotes Principais:
//
// 1. envloader: carregamento de configurações via tags "env" e "envDefault".
//
// 2. dyndb: Store[T] genérico sobre DynamoDB, com Scan como iterador lazy.
//
// 3. pkg/trucks: validação e regras das operações de trucks.
//
// 4. pkg/transport: Router, adaptador Lambda e servidor HTTP local (gorilla/mux).
//
// Configuração:
//
// O binário em cmd/server lê um YAML opcional (CONFIG_FILE_PATH) e as
// variáveis de ambiente (DYNAMODB_TABLE_NAME, SERVICE_RUNTIME, LOG_LEVEL...).
// Com SERVICE_RUNTIME=local o serviço sobe em SERVICE_PORT, útil junto com
// DYNAMODB_ENDPOINT apontando para um DynamoDB Local.
package trucksservice
