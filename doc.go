// Package cognito_emulator reúne um emulador HTTP do Cognito Identity Provider
// para testes de integração.
//
// O emulador recebe chamadas JSON-RPC no formato do serviço real (header
// X-Amz-Target, campo "Action" do corpo ou query string), valida a requisição
// contra o catálogo de actions e responde com um template JSON renderizado.
//
// Componentes:
//
// 1. pkg/action e pkg/userpools:
//   - Resolução da action e catálogo tipado com validação por tags.
//
// 2. pkg/awserr:
//   - Taxonomia de erros comuns e específicos de cada action.
//
// 3. pkg/faults:
//   - Injeção de falhas por action, carregada de arquivo local, S3 ou DynamoDB.
//
// 4. pkg/hooks:
//   - Hooks opcionais (CEL ou executável) que enriquecem ou forçam respostas.
//
// 5. pkg/render:
//   - Templates pongo2 com fallback para os templates embutidos.
//
// 6. pkg/engine e pkg/transport:
//   - Pipeline de dispatch e adaptadores HTTP e Lambda.
//
// Exemplo de arquivo de falhas:
//
//	AdminGetUser:
//	  error_type: UserNotFoundException
//	  error_message: usuário removido
//	ListUsers:
//	  template: ListUsersEmpty
//
// Execução local:
//
//	go run ./cmd/emulator --config ./user_pools.yml --templates ./templates --port 9229
//
// Validação do arquivo de falhas:
//
//	go run ./cmd/toolkit validate -file ./user_pools.yml
package cognito_emulator
