// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/acheiapp/achei/internal/api"
	"github.com/acheiapp/achei/internal/export"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
)

func newObjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objetos",
		Short: "Manage your registered belongings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listObjects()
		},
	}
	cmd.AddCommand(newObjectsListCmd(), newObjectsAddCmd(), newObjectsRemoveCmd(), newExportCmd())
	return cmd
}

func newObjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered belongings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listObjects()
		},
	}
}

func listObjects() error {
	if err := requireSession(); err != nil {
		return err
	}
	ctx, cancel := commandContext()
	defer cancel()
	objs, err := apiClient.ListObjects(ctx)
	if err != nil {
		return err
	}
	if len(objs) == 0 {
		fmt.Println(i18n.T("objects.empty"))
		return nil
	}
	for _, o := range objs {
		fmt.Printf("%-4d %-24s %-12s %s\n", o.ID, o.Name, o.Category, o.SerialNumber)
	}
	return nil
}

func newObjectsAddCmd() *cobra.Command {
	var category, description, serial string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a belonging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if trimmed(args[0]) == "" {
				return errors.New(i18n.T("objects.form.error.name_required"))
			}
			ctx, cancel := commandContext()
			defer cancel()
			created, err := apiClient.AddObject(ctx, api.NewObject{
				Name:         args[0],
				Category:     category,
				Description:  description,
				SerialNumber: serial,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s (#%d)\n", i18n.T("objects.added"), created.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "categoria", "c", "", "Object category")
	cmd.Flags().StringVarP(&description, "descricao", "d", "", "Description")
	cmd.Flags().StringVarP(&serial, "serie", "s", "", "Serial number")
	return cmd
}

func newObjectsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a belonging from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			var id int64
			if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
				return fmt.Errorf("invalid object id %q", args[0])
			}
			ctx, cancel := commandContext()
			defer cancel()
			if err := apiClient.DeleteObject(ctx, id); err != nil {
				return err
			}
			fmt.Println(i18n.T("objects.deleted"))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export objects and cases to a compressed archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			objects, err := apiClient.ListObjects(ctx)
			if err != nil {
				return err
			}
			cases, err := apiClient.ListCases(ctx, "")
			if err != nil {
				return err
			}

			var user model.User
			if sess := sessions.Current(); sess != nil {
				user = sess.User
			}
			if outputPath == "" {
				outputPath = export.DefaultFilename(time.Now())
			}
			f, err := os.Create(outputPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.Write(f, export.Archive{
				GeneratedAt: time.Now(),
				User:        user,
				Objects:     objects,
				Cases:       cases,
			}); err != nil {
				return err
			}
			fmt.Println(i18n.Tf("export.done", map[string]any{"Path": outputPath}))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path")
	return cmd
}
