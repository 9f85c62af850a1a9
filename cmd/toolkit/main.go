package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raywall/cognito-emulator/pkg/faults"
	"github.com/raywall/cognito-emulator/pkg/userpools"
)

const usage = "Comandos esperados: validate, actions, sample"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run devolve o código de saída do processo.
func run(ctx context.Context, args []string, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(out, usage)
		return 1
	}

	var err error
	switch args[0] {
	case "validate":
		err = runValidate(ctx, args[1:], out)
	case "actions":
		err = runActions(out)
	case "sample":
		err = runSample(args[1:], out)
	default:
		err = fmt.Errorf("comando desconhecido: %s\n%s", args[0], usage)
	}

	if err != nil {
		fmt.Fprintf(out, "❌ %v\n", err)
		return 1
	}
	return 0
}

func runValidate(ctx context.Context, args []string, out io.Writer) error {
	cmd := flag.NewFlagSet("validate", flag.ContinueOnError)
	cmd.SetOutput(out)
	file := cmd.String("file", "", "Caminho do arquivo YAML ou S3/DynamoDB URI")
	region := cmd.String("region", os.Getenv("AWS_REGION"), "Região AWS para fontes remotas")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("flag -file é obrigatória")
	}

	fmt.Fprintf(out, "🔍 Analisando configuração: %s ...\n", *file)

	// 1. Load (Validação Estrutural)
	store, err := faults.Load(ctx, *file, *region)
	if err != nil {
		return fmt.Errorf("erro de carregamento/estrutura:\n%v", err)
	}

	// 2. Analyze (Validação contra o catálogo)
	report := faults.Analyze(store, userpools.NewCatalog())

	if os.Getenv("OUTPUT_FORMAT") == "json" {
		jsonOutput, _ := json.Marshal(report)
		fmt.Fprintln(out, string(jsonOutput))
	} else {
		for _, w := range report.Warnings {
			fmt.Fprintf(out, "⚠️  %s\n", w)
		}
	}

	if !report.Valid {
		return fmt.Errorf("a configuração contém erros:\n - %s", strings.Join(report.Errors, "\n - "))
	}

	if os.Getenv("OUTPUT_FORMAT") != "json" {
		fmt.Fprintf(out, "✅ Configuração válida (%d ações)\n", store.Len())
	}
	return nil
}

func runActions(out io.Writer) error {
	catalog := userpools.NewCatalog()
	for _, name := range catalog.Names() {
		schema, _ := catalog.Lookup(name)
		fmt.Fprintf(out, "%-32s %-5s %d erros\n", name, schema.Output, schema.Errors.Len())
	}
	return nil
}

func runSample(args []string, out io.Writer) error {
	cmd := flag.NewFlagSet("sample", flag.ContinueOnError)
	cmd.SetOutput(out)
	name := cmd.String("action", "", "Nome da ação")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	body, ok := userpools.Sample(*name)
	if !ok {
		return fmt.Errorf("ação sem exemplo: '%s'", *name)
	}
	fmt.Fprintln(out, body)
	return nil
}
