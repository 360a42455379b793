// Package main содержит точку входа консольного клиента crudctl.
//
// Пакет отвечает за запуск CLI и передачу информации о версии и дате сборки в CLI-слой.
package main

import "github.com/IvanChernomyrdin/go-users-items-api/internal/agent/cli"

var (
	// buildVersion версия приложения, задаётся через -ldflags.
	buildVersion = "dev"
	// buildDate дата сборки.
	buildDate = "unknown"
)

func main() {
	cli.Execute(buildVersion, buildDate)
}
