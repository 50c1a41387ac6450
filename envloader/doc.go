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

// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go usando as tags `env` e `envDefault`.
//
// Tipos suportados: string, int*, uint*, bool, float* e time.Duration, além
// de structs aninhadas (inclusive ponteiros para struct).
//
// Precedência:
//   - variável definida e não vazia: sempre vence;
//   - campo já preenchido (ex.: vindo de um arquivo YAML): é mantido;
//   - caso contrário, o valor de `envDefault` é aplicado.
//
// Exemplo:
//
//	type TableConf struct {
//		Name    string        `env:"DYNAMODB_TABLE_NAME" envDefault:"trucks"`
//		Timeout time.Duration `env:"SERVICE_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg TableConf
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader
