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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/raywall/trucks-service/dyndb"
	"github.com/raywall/trucks-service/pkg/config"
	"github.com/raywall/trucks-service/pkg/logger"
	"github.com/raywall/trucks-service/pkg/transport"
	"github.com/raywall/trucks-service/pkg/trucks"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	newSSMClient  = func(cfg aws.Config) config.SSMClient { return ssm.NewFromConfig(cfg) }
)

func main() {
	if err := run(context.Background(), os.Getenv(config.EnvConfigPath)); err != nil {
		log.Fatal().Err(err).Msg("FATAL: falha na inicialização do serviço")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	// 1. Configuração (arquivo opcional + env)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// 2. Logger global
	appLog := logger.Configure(cfg.Logging)
	appLog.Info().
		Str("service", cfg.Service.Name).
		Str("runtime", cfg.Service.Runtime).
		Msg("inicializando serviço")

	// 3. Clientes AWS (criados uma vez e reaproveitados entre invocações)
	awsCfg, err := config.LoadAWS(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	if err := config.ResolveTableName(ctx, newSSMClient(awsCfg), cfg); err != nil {
		return err
	}

	store := dyndb.New[trucks.Record](config.NewDynamoClient(awsCfg, cfg.AWS), dyndb.TableConfig[trucks.Record]{
		TableName:    cfg.Table.Name,
		HashKey:      trucks.KeyField,
		ScanPageSize: cfg.Table.ScanPageSize,
	})
	appLog.Info().Str("table", cfg.Table.Name).Msg("store configurado")

	// 4. Monta o handler
	router := transport.NewRouter(trucks.NewService(store))
	handler := transport.NewLambdaHandler(router, cfg.Service.Timeout)

	// 5. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(cfg.Service.Port, handler)
	case "lambda":
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
