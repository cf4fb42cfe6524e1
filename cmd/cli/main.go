package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fondos-cli",
		Short: "Fondos CLI tool",
		Long:  `A command line interface for interacting with the Fondos API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Fondos API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(cuentasCmd())
	rootCmd.AddCommand(movimientosCmd())
	rootCmd.AddCommand(transferirCmd())
	rootCmd.AddCommand(consistenciaCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func cuentasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cuentas",
		Short: "Fund account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all fund accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cuentas")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one fund account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/cuentas/" + args[0])
		},
	})

	var saldo string
	create := &cobra.Command{
		Use:   "create <nombre>",
		Short: "Create a fund account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/cuentas", map[string]any{
				"nombre": args[0],
				"saldo":  saldo,
			})
		},
	}
	create.Flags().StringVar(&saldo, "saldo", "0", "Initial balance")
	cmd.AddCommand(create)

	return cmd
}

func movimientosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movimientos",
		Short: "Movement operations",
	}

	var (
		cuentaID string
		tipo     string
		desde    string
		hasta    string
		busqueda string
		limit    int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List movements",
		Run: func(cmd *cobra.Command, args []string) {
			query := fmt.Sprintf("?limit=%d", limit)
			for key, val := range map[string]string{
				"cuenta_id": cuentaID,
				"tipo":      tipo,
				"desde":     desde,
				"hasta":     hasta,
				"busqueda":  busqueda,
			} {
				if val != "" {
					query += "&" + key + "=" + val
				}
			}
			getJSON("/api/v1/movimientos" + query)
		},
	}
	list.Flags().StringVar(&cuentaID, "cuenta", "", "Filter by account ID")
	list.Flags().StringVar(&tipo, "tipo", "", "Filter by type (INGRESO or EGRESO)")
	list.Flags().StringVar(&desde, "desde", "", "Start date (YYYY-MM-DD)")
	list.Flags().StringVar(&hasta, "hasta", "", "End date (YYYY-MM-DD)")
	list.Flags().StringVar(&busqueda, "busqueda", "", "Search in origin and reference")
	list.Flags().IntVar(&limit, "limit", 100, "Maximum rows")
	cmd.AddCommand(list)

	var (
		origen       string
		referenciaID int64
	)
	register := &cobra.Command{
		Use:   "register <cuenta-id> <tipo> <monto>",
		Short: "Register a movement",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			body := map[string]any{
				"cuenta_id": jsonNumber(args[0]),
				"tipo":      args[1],
				"origen":    origen,
				"monto":     args[2],
			}
			if referenciaID > 0 {
				body["referencia_id"] = referenciaID
			}
			postJSON("/api/v1/movimientos", body)
		},
	}
	register.Flags().StringVar(&origen, "origen", "", "Movement origin")
	register.Flags().Int64Var(&referenciaID, "referencia", 0, "Reference ID")
	cmd.AddCommand(register)

	return cmd
}

func transferirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transferir <origen-id> <destino-id> <monto>",
		Short: "Transfer funds between two accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/transferencias", map[string]any{
				"cuenta_origen":  jsonNumber(args[0]),
				"cuenta_destino": jsonNumber(args[1]),
				"monto":          args[2],
			})
		},
	}
}

func consistenciaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistencia",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			client := &http.Client{Timeout: timeout}
			resp, err := client.Get(baseURL + "/api/v1/ledger/consistencia")
			if err != nil {
				fmt.Printf("Error making request: %v\n", err)
				os.Exit(1)
			}
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != http.StatusOK {
				fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
				os.Exit(1)
			}

			var result map[string]any
			if err := json.Unmarshal(body, &result); err != nil {
				fmt.Printf("Failed to parse response: %v\n", err)
				os.Exit(1)
			}

			if consistent, ok := result["consistente"].(bool); ok && consistent {
				fmt.Println("Consistency check PASSED")
				return
			}

			fmt.Println("Consistency check FAILED")
			printJSON(body)
			os.Exit(1)
		},
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	printJSON(body)
}

func postJSON(path string, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode payload: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	printJSON(body)
}

func printJSON(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

// jsonNumber keeps numeric CLI args numeric on the wire.
func jsonNumber(s string) json.Number {
	return json.Number(s)
}
