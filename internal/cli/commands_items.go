// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

// addFieldFlags registers one string flag per encrypted field.
func addFieldFlags(flags *pflag.FlagSet) {
	flags.String(string(models.FieldTitle), "", "item title")
	flags.String(string(models.FieldUsername), "", "login name")
	flags.String(string(models.FieldPassword), "", "secret to store")
	flags.String(string(models.FieldURL), "", "site address")
	flags.String(string(models.FieldNotes), "", "free-form notes")
	flags.StringSlice("tag", nil, "plaintext tag, may be repeated")
	flags.Bool("generate", false, "store a freshly generated password")
}

// changedField returns a pointer to the flag value when the flag was given,
// so an explicit empty value is kept apart from an absent one.
func changedField(flags *pflag.FlagSet, name models.FieldName) *string {
	if !flags.Changed(string(name)) {
		return nil
	}
	v, _ := flags.GetString(string(name))
	return &v
}

func generatedPassword(flags *pflag.FlagSet, deps *Deps, current *string) (*string, error) {
	if gen, _ := flags.GetBool("generate"); !gen {
		return current, nil
	}
	secret, err := deps.Vault.Generate(generator.DefaultPolicy())
	if err != nil {
		return nil, err
	}
	return &secret, nil
}

func newAddCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Encrypt and store a new item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			in := client.ItemInput{
				Title:    changedField(flags, models.FieldTitle),
				Username: changedField(flags, models.FieldUsername),
				URL:      changedField(flags, models.FieldURL),
				Notes:    changedField(flags, models.FieldNotes),
			}
			in.Tags, _ = flags.GetStringSlice("tag")

			var err error
			if in.Password, err = generatedPassword(flags, deps, changedField(flags, models.FieldPassword)); err != nil {
				return err
			}

			if err = ensureUnlocked(cmd, deps); err != nil {
				return err
			}

			id, err := deps.Vault.AddItem(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	addFieldFlags(cmd.Flags())
	return cmd
}

func newListCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Decrypt and show your items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, _ := cmd.Flags().GetString("tag")

			if err := ensureUnlocked(cmd, deps); err != nil {
				return err
			}

			items, err := deps.Vault.ListItems(cmd.Context(), tag)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no items")
				return nil
			}

			printItems(cmd.OutOrStdout(), cmd.ErrOrStderr(), items)
			return nil
		},
	}

	cmd.Flags().String("tag", "", "only items carrying this tag")
	return cmd
}

func newUpdateCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change some fields of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			patch := client.ItemPatch{
				Title:    changedField(flags, models.FieldTitle),
				Username: changedField(flags, models.FieldUsername),
				URL:      changedField(flags, models.FieldURL),
				Notes:    changedField(flags, models.FieldNotes),
			}

			var err error
			if patch.Password, err = generatedPassword(flags, deps, changedField(flags, models.FieldPassword)); err != nil {
				return err
			}

			if clearTags, _ := flags.GetBool("clear-tags"); clearTags {
				patch.Tags = &[]string{}
			} else if flags.Changed("tag") {
				tags, _ := flags.GetStringSlice("tag")
				patch.Tags = &tags
			}

			if patch == (client.ItemPatch{}) {
				return ErrNothingToUpdate
			}

			if err = ensureUnlocked(cmd, deps); err != nil {
				return err
			}
			if err = deps.Vault.UpdateItem(cmd.Context(), args[0], patch); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "updated")
			return nil
		},
	}

	addFieldFlags(cmd.Flags())
	cmd.Flags().Bool("clear-tags", false, "remove every tag")
	cmd.MarkFlagsMutuallyExclusive("tag", "clear-tags")
	return cmd
}

func newRemoveCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureUnlocked(cmd, deps); err != nil {
				return err
			}
			if err := deps.Vault.DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
