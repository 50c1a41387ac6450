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

import (
	"fmt"
	"os"

	"github.com/raywall/trucks-service/envloader"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath é a variável que aponta para um arquivo YAML opcional
const EnvConfigPath = "CONFIG_FILE_PATH"

// Load monta a configuração do serviço em três etapas:
//  1. arquivo YAML em path (ignorado se path for vazio);
//  2. variáveis de ambiente, que sobrescrevem o arquivo e preenchem defaults;
//  3. validação estrutural e semântica.
func Load(path string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv usa CONFIG_FILE_PATH, quando definido, como arquivo base.
func LoadFromEnv() (*ServiceConfig, error) {
	return Load(os.Getenv(EnvConfigPath))
}
