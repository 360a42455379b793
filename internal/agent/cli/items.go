package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/utils"
)

// NewItemsCmd группа команд для /api/items.
func NewItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Управление товарами",
	}

	cmd.AddCommand(ItemsList(app))
	cmd.AddCommand(ItemsGet(app))
	cmd.AddCommand(ItemsCreate(app))
	cmd.AddCommand(ItemsUpdate(app))
	cmd.AddCommand(ItemsDelete(app))

	return cmd
}

// ItemsList выводит товары, --category фильтрует по категории.
func ItemsList(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Список товаров",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := NewAPIClient(app.ServerURL).ListItems(category)
			if err != nil {
				return err
			}
			return printJSON(cmd, items)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")

	return cmd
}

// ItemsGet выводит товар по id.
func ItemsGet(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "get <id>",
		Short:        "Получить товар",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := NewAPIClient(app.ServerURL).GetItem(args[0])
			if api.IsNotFound(err) {
				return fmt.Errorf("item %s does not exist: %w", args[0], err)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, item)
		},
	}
}

// ItemsCreate создаёт товар.
// Без --price поле в запрос не попадает и сервер ответит 400,
// --price 0 допустимая цена.
//
// Пример:
//
//	crudctl items create --name Laptop --description "Gaming laptop" --price 999.99
func ItemsCreate(app *App) *cobra.Command {
	var (
		name, description, category string
		price                       float64
	)

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Создать товар",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateItemRequest{
				Name:        name,
				Description: description,
				Price:       utils.IfSet(cmd.Flags().Changed("price"), price),
				Category:    category,
			}

			item, err := NewAPIClient(app.ServerURL).CreateItem(req)
			if err != nil {
				return err
			}
			return printJSON(cmd, item)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&description, "description", "", "item description")
	cmd.Flags().Float64Var(&price, "price", 0, "item price")
	cmd.Flags().StringVar(&category, "category", "", "item category")

	return cmd
}

// ItemsUpdate частично обновляет товар, отправляются только заданные флаги.
//
// Пример:
//
//	crudctl items update 1 --price 0 --category sale
func ItemsUpdate(app *App) *cobra.Command {
	var (
		name, description, category string
		price                       float64
	)

	cmd := &cobra.Command{
		Use:          "update <id>",
		Short:        "Обновить товар",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			req := models.UpdateItemRequest{
				Name:        utils.IfSet(flags.Changed("name"), name),
				Description: utils.IfSet(flags.Changed("description"), description),
				Price:       utils.IfSet(flags.Changed("price"), price),
				Category:    utils.IfSet(flags.Changed("category"), category),
			}

			item, err := NewAPIClient(app.ServerURL).UpdateItem(args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, item)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().Float64Var(&price, "price", 0, "new price")
	cmd.Flags().StringVar(&category, "category", "", "new category")

	return cmd
}

// ItemsDelete удаляет товар.
func ItemsDelete(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "delete <id>",
		Short:        "Удалить товар",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewAPIClient(app.ServerURL).DeleteItem(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted item %s\n", args[0])
			return nil
		},
	}
}
