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
//
// Package envloader preenche structs de configuração a partir de variáveis
// de ambiente, usando as tags `env` (nome da variável) e `envDefault`
// (valor usado quando a variável está ausente ou vazia).
//
// Tipos suportados: string, inteiros, unsigned, bool, float, time.Duration
// e []string (valores separados por vírgula). Structs aninhadas e ponteiros
// para struct são percorridos recursivamente.
//
// Exemplo:
//
//	type ServerConf struct {
//		Port    int           `env:"EMULATOR_PORT" envDefault:"8080"`
//		Timeout time.Duration `env:"EMULATOR_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConf
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// LoadWith aceita uma função de lookup própria, útil em testes.
package envloader
