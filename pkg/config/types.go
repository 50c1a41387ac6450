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

package config

import "time"

// ServiceConfig é a configuração raiz do serviço. Pode vir de um arquivo YAML
// (CONFIG_FILE_PATH) e é sempre complementada pelas variáveis de ambiente.
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service"`
	Table   TableConf      `yaml:"table"`
	AWS     AWSConf        `yaml:"aws"`
	Logging LoggingConf    `yaml:"logging"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name    string        `yaml:"name" env:"SERVICE_NAME" envDefault:"trucks-service" validate:"required,hostname_rfc1123"`
	Runtime string        `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"lambda" validate:"required,oneof=lambda local"`
	Port    int           `yaml:"port" env:"SERVICE_PORT" envDefault:"8080" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Timeout time.Duration `yaml:"timeout" env:"SERVICE_TIMEOUT" envDefault:"10s" validate:"gte=0"`
}

// TableConf descreve a tabela DynamoDB dos trucks.
type TableConf struct {
	Name string `yaml:"name" env:"DYNAMODB_TABLE_NAME" envDefault:"trucks" validate:"required"`
	// NameParameter, quando definido, é o nome de um parâmetro do SSM
	// Parameter Store cujo valor substitui Name no boot.
	NameParameter string `yaml:"name_parameter" env:"DYNAMODB_TABLE_NAME_PARAMETER"`
	ScanPageSize  int32  `yaml:"scan_page_size" env:"DYNAMODB_SCAN_PAGE_SIZE" validate:"gte=0"`
}

type AWSConf struct {
	Region string `yaml:"region" env:"AWS_REGION" envDefault:"eu-north-1" validate:"required"`
	// Endpoint aponta o cliente DynamoDB para outro host (ex.: DynamoDB Local).
	Endpoint    string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	MaxAttempts int    `yaml:"max_attempts" env:"AWS_MAX_ATTEMPTS" envDefault:"3" validate:"gte=1,lte=10"`
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}
