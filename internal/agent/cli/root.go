// Package cli реализует командный интерфейс (CLI) клиента users/items API.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд (users, items, version);
//   - разбор аргументов и флагов командной строки;
//   - выполнение запросов к серверу и вывод результата пользователю в JSON.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DefaultServerURL адрес сервера по умолчанию.
const DefaultServerURL = "http://localhost:3000"

// App содержит состояние CLI-приложения, разделяемое между командами.
type App struct {
	// ServerURL — базовый URL сервера (например, "http://localhost:3000").
	ServerURL string
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: DefaultServerURL,
	}

	cmd := &cobra.Command{
		Use:   "crudctl",
		Short: "crudctl — консольный клиент users/items API",
		Long: `crudctl — консольный клиент users/items API.

Команды:
  users     CRUD пользователей
  items     CRUD товаров
  version   Версия и дата сборки

Примеры:
  crudctl users create --name "John Doe" --email john@example.com
  crudctl users list
  crudctl items create --name Laptop --description "Gaming laptop" --price 999.99
  crudctl items update 1 --price 0
  crudctl items list --category electronics
  crudctl --server http://127.0.0.1:8080 users get 1
`,
		Version:      buildVersion,
		SilenceUsage: true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")

	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewItemsCmd(app))
	cmd.AddCommand(NewVersionCmd(app, buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printJSON печатает v в stdout команды с отступами.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
