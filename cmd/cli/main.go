// Package main is the entry point for the orçamentos CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dl_orcamentos/internal/app"
	"dl_orcamentos/internal/config"
	"dl_orcamentos/internal/domain/entities"
	"dl_orcamentos/internal/infrastructure/export"
	"dl_orcamentos/internal/infrastructure/logger"
	"dl_orcamentos/internal/usecase"
	"dl_orcamentos/pkg"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var container *app.App

var rootCmd = &cobra.Command{
	Use:   "orcamentos",
	Short: "Quote workflow CLI",
	Long:  `Inspect the quote board and run workflow actions against the orçamentos backend.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		zapLogger, err := logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		container, err = app.New(cmd.Context(), cfg, zapLogger)
		if err != nil {
			return fmt.Errorf("failed to build app: %w", err)
		}
		if _, err := container.Workflow.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load quotes: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		printNotificacoes()
		if container != nil {
			_ = container.Close()
			_ = container.Logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printNotificacoes()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listarCmd)
	rootCmd.AddCommand(quadroCmd)
	rootCmd.AddCommand(enviarCmd)
	rootCmd.AddCommand(concluirCmd)
	rootCmd.AddCommand(freteCmd)
	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(exportarCmd)
}

func printNotificacoes() {
	if container == nil {
		return
	}
	for _, n := range container.Inbox.Drain() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", n.Nivel, n.Mensagem)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid quote id: %q", arg)
	}
	return id, nil
}

func printOrcamento(o entities.Orcamento) {
	frete := "-"
	if o.FreteValor != nil {
		frete = pkg.FormatBRLFloat(*o.FreteValor)
	}
	fmt.Printf("  #%-5d %-14s %-28.28s %-12s %-7s %14s  frete %s\n",
		o.ID, o.Numero, o.ClienteNome, o.DisplayStatus().Label(), o.Prioridade,
		pkg.FormatBRLFloat(o.ValorTotal), frete)
}

// Listar command
var filtro struct {
	busca      string
	status     string
	prioridade string
	ordenacao  string
}

func filtroVisao() usecase.FiltroVisao {
	return usecase.FiltroVisao{
		Busca:      filtro.busca,
		Status:     entities.OrcamentoStatus(filtro.status),
		Prioridade: entities.Prioridade(filtro.prioridade),
		Ordenacao:  usecase.Ordenacao(filtro.ordenacao),
	}
}

var listarCmd = &cobra.Command{
	Use:   "listar",
	Short: "List quotes",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Workflow.Snapshot()
		quotes := container.Workflow.List(filtroVisao())
		for _, o := range quotes {
			printOrcamento(o)
		}
		fmt.Printf("Total: %d orçamentos\n", len(quotes))
		if m := snap.Metricas; m != nil {
			fmt.Printf("Potencial: %s  Conversão: %.1f%%\n", pkg.FormatBRLFloat(m.ValorTotalPotencial), m.TaxaConversaoGeral)
		}
		return nil
	},
}

var quadroCmd = &cobra.Command{
	Use:   "quadro",
	Short: "Show the quote board grouped by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := container.Workflow.Board(filtroVisao())
		for _, col := range q.Colunas {
			fmt.Printf("=== %s (%d) ===\n", col.Status.Label(), len(col.Orcamentos))
			for _, o := range col.Orcamentos {
				printOrcamento(o)
			}
		}
		fmt.Printf("Total: %d orçamentos\n", q.Total)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{listarCmd, quadroCmd} {
		c.Flags().StringVar(&filtro.busca, "busca", "", "Match number, customer or notes")
		c.Flags().StringVar(&filtro.status, "status", "", "Filter by status (todos, pendente, enviado, aprovado, expirado, convertido, concluido)")
		c.Flags().StringVar(&filtro.prioridade, "prioridade", "", "Filter by priority (alta, media, baixa)")
		c.Flags().StringVar(&filtro.ordenacao, "ordenacao", string(usecase.OrdenarPorData), "Sort by data, valor, prioridade or vencimento")
	}
}

// Transition commands
var enviarOpts struct {
	telefone string
	mensagem string
}

var enviarCmd = &cobra.Command{
	Use:   "enviar [id]",
	Short: "Send a quote to the customer over WhatsApp",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		o, err := container.Workflow.Transition(cmd.Context(), id, entities.AcaoEnviar, usecase.TransitionOptions{
			Telefone: enviarOpts.telefone,
			Mensagem: enviarOpts.mensagem,
		})
		if err != nil {
			return err
		}
		printOrcamento(o)
		return nil
	},
}

var concluirObservacao string

var concluirCmd = &cobra.Command{
	Use:   "concluir [id]",
	Short: "Close an approved quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		o, err := container.Workflow.Transition(cmd.Context(), id, entities.AcaoConcluir, usecase.TransitionOptions{
			Observacao: concluirObservacao,
		})
		if err != nil {
			return err
		}
		printOrcamento(o)
		return nil
	},
}

func init() {
	enviarCmd.Flags().StringVar(&enviarOpts.telefone, "telefone", "", "WhatsApp number (defaults to the customer's)")
	enviarCmd.Flags().StringVar(&enviarOpts.mensagem, "mensagem", "", "Custom message")
	concluirCmd.Flags().StringVar(&concluirObservacao, "observacao", "", "Closing note")
}

// Frete commands
var freteCmd = &cobra.Command{
	Use:   "frete",
	Short: "Freight operations",
}

var freteValor float64

var freteCalcularCmd = &cobra.Command{
	Use:   "calcular [id] [cep]",
	Short: "Quote freight options for a quote",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		opcoes, err := container.Frete.CalculateFreight(cmd.Context(), id, args[1], freteValor)
		if err != nil {
			return err
		}
		for i, op := range opcoes {
			fmt.Printf("  %d) %-20s %-16s %3d dias  %s\n", i+1, op.Transportadora, op.Servico, op.Prazo, pkg.FormatBRLFloat(op.Valor))
		}
		return nil
	},
}

var freteAplicarOpcao int

var freteAplicarCmd = &cobra.Command{
	Use:   "aplicar [id] [cep]",
	Short: "Calculate freight and apply one of the options",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		opcoes, err := container.Frete.CalculateFreight(cmd.Context(), id, args[1], freteValor)
		if err != nil {
			return err
		}
		if freteAplicarOpcao < 1 || freteAplicarOpcao > len(opcoes) {
			return fmt.Errorf("option %d out of range (1-%d)", freteAplicarOpcao, len(opcoes))
		}
		o, err := container.Frete.ApplyFreight(cmd.Context(), id, opcoes[freteAplicarOpcao-1])
		if err != nil {
			return err
		}
		printOrcamento(o)
		return nil
	},
}

func init() {
	freteCmd.AddCommand(freteCalcularCmd)
	freteCmd.AddCommand(freteAplicarCmd)
	freteCmd.PersistentFlags().Float64Var(&freteValor, "valor", 0, "Declared value (defaults to the quote total)")
	freteAplicarCmd.Flags().IntVar(&freteAplicarOpcao, "opcao", 1, "Option number as listed by calcular")
}

// Output commands
var outputDir string

var pdfCmd = &cobra.Command{
	Use:   "pdf [id]",
	Short: "Render a quote PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		doc, err := container.Workflow.GeneratePDF(cmd.Context(), id)
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, doc.NomeArquivo)
		if err := os.WriteFile(path, doc.Conteudo, 0o644); err != nil {
			return fmt.Errorf("failed to write pdf: %w", err)
		}
		fmt.Printf("PDF: %s (registrado: %t)\n", path, doc.Registrado)
		if doc.ArquivoURL != "" {
			fmt.Printf("Arquivo: %s\n", doc.ArquivoURL)
		}
		return nil
	},
}

var exportarCmd = &cobra.Command{
	Use:   "exportar",
	Short: "Export the filtered quote list to XLSX",
	RunE: func(cmd *cobra.Command, args []string) error {
		quotes := container.Workflow.List(filtroVisao())
		content, name, err := export.OrcamentosXLSXBytes(quotes, time.Now())
		if err != nil {
			return err
		}
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Printf("Exportados %d orçamentos para %s\n", len(quotes), path)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{pdfCmd, exportarCmd} {
		c.Flags().StringVar(&outputDir, "dir", ".", "Output directory")
	}
	exportarCmd.Flags().StringVar(&filtro.busca, "busca", "", "Match number, customer or notes")
	exportarCmd.Flags().StringVar(&filtro.status, "status", "", "Filter by status")
	exportarCmd.Flags().StringVar(&filtro.prioridade, "prioridade", "", "Filter by priority")
	exportarCmd.Flags().StringVar(&filtro.ordenacao, "ordenacao", string(usecase.OrdenarPorData), "Sort order")
}
