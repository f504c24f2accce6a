package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quirk/pkg/widget"
)

func (a *app) newWidgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widget",
		Short: "Manage stored widgets",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <kind>",
			Short: "Create a widget (" + strings.Join(widget.Kinds, ", ") + ")",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runWidgetCreate,
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Show a widget",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runWidgetShow,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all widgets",
			Args:  cobra.NoArgs,
			RunE:  a.runWidgetList,
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a widget",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runWidgetDelete,
		},
	)
	return cmd
}

func (a *app) runWidgetCreate(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	w, err := store.Widgets().Create(args[0])
	if err != nil {
		return storeError("create widget", err)
	}
	a.logger.Debug("created widget", slog.String("kind", args[0]))
	return a.printWidgets(cmd.OutOrStdout(), false, w)
}

func (a *app) runWidgetShow(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	w, err := store.Widgets().Get(args[0])
	if err != nil {
		return storeError("get widget", err)
	}
	return a.printWidgets(cmd.OutOrStdout(), false, w)
}

func (a *app) runWidgetList(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	all, err := store.Widgets().List()
	if err != nil {
		return storeError("list widgets", err)
	}
	return a.printWidgets(cmd.OutOrStdout(), true, all...)
}

func (a *app) runWidgetDelete(cmd *cobra.Command, args []string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.Widgets().Delete(args[0]); err != nil {
		return storeError("delete widget", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
	return nil
}
