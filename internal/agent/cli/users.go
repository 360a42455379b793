package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/agent/api"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/utils"
)

// NewUsersCmd группа команд для /api/users.
func NewUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Управление пользователями",
	}

	cmd.AddCommand(UsersList(app))
	cmd.AddCommand(UsersGet(app))
	cmd.AddCommand(UsersCreate(app))
	cmd.AddCommand(UsersUpdate(app))
	cmd.AddCommand(UsersDelete(app))

	return cmd
}

// UsersList выводит всех пользователей.
func UsersList(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "Список пользователей",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := NewAPIClient(app.ServerURL).ListUsers()
			if err != nil {
				return err
			}
			return printJSON(cmd, users)
		},
	}
}

// UsersGet выводит пользователя по id.
func UsersGet(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "get <id>",
		Short:        "Получить пользователя",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := NewAPIClient(app.ServerURL).GetUser(args[0])
			if api.IsNotFound(err) {
				return fmt.Errorf("user %s does not exist: %w", args[0], err)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}
}

// UsersCreate создаёт пользователя.
//
// Пример:
//
//	crudctl users create --name "John Doe" --email john@example.com
func UsersCreate(app *App) *cobra.Command {
	var req models.CreateUserRequest

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Создать пользователя",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := NewAPIClient(app.ServerURL).CreateUser(req)
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "user name")
	cmd.Flags().StringVar(&req.Email, "email", "", "user email")

	return cmd
}

// UsersUpdate частично обновляет пользователя.
// В запрос попадают только явно заданные флаги.
//
// Пример:
//
//	crudctl users update 1 --email new@example.com
func UsersUpdate(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:          "update <id>",
		Short:        "Обновить пользователя",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.UpdateUserRequest{
				Name:  utils.IfSet(cmd.Flags().Changed("name"), name),
				Email: utils.IfSet(cmd.Flags().Changed("email"), email),
			}

			user, err := NewAPIClient(app.ServerURL).UpdateUser(args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")

	return cmd
}

// UsersDelete удаляет пользователя.
func UsersDelete(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "delete <id>",
		Short:        "Удалить пользователя",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := NewAPIClient(app.ServerURL).DeleteUser(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s\n", args[0])
			return nil
		},
	}
}
