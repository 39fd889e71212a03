// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/models"
)

const undecryptable = "<cannot decrypt>"

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	idColor   = color.New(color.Bold)
)

func printItem(w io.Writer, item client.Item) {
	idColor.Fprint(w, item.ID)
	if len(item.Tags) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(item.Tags, ", "))
	}
	fmt.Fprintln(w)

	for _, name := range models.VaultFieldNames {
		result, ok := item.Fields[name]
		if !ok {
			continue
		}
		if result.Err != nil {
			fmt.Fprintf(w, "  %-8s ", name+":")
			warnColor.Fprintln(w, undecryptable)
			continue
		}
		fmt.Fprintf(w, "  %-8s %s\n", name+":", result.Value)
	}
}

func printItems(out, errOut io.Writer, items []client.Item) {
	failed := 0
	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(out)
		}
		printItem(out, item)
		failed += len(item.Failed())
	}

	if failed > 0 {
		warnColor.Fprintf(errOut, "warning: %d field(s) could not be decrypted with this master password\n", failed)
	}
}
