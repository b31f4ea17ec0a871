// Package docs renders the tool registry as a markdown provisioning
// reference, grouped by context.
package docs

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/provkit/provision/internal/core"
)

// DefaultPath is where generate-docs writes the registry dump.
const DefaultPath = "PROVISIONING.md"

// purlTypes maps manager keys to package-url types. Managers without a
// registered PURL type fall back to pkg:generic.
var purlTypes = map[string]string{
	"apt":      packageurl.TypeDebian,
	"pip":      packageurl.TypePyPi,
	"cargo":    packageurl.TypeCargo,
	"npm":      packageurl.TypeNPM,
	"gem":      packageurl.TypeGem,
	"composer": packageurl.TypeComposer,
	"dotnet":   packageurl.TypeNuget,
	"luarocks": "luarocks",
}

// Generate writes the registry dump for tools to path.
func Generate(path string, tools []core.Tool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, tools); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders the registry dump to w: one table per context group, in
// sorted group order, tools in registry order within each group.
func Write(w io.Writer, tools []core.Tool) error {
	var b strings.Builder

	b.WriteString("# System Provisioning & Ecosystem\n\n")
	b.WriteString("This file is **automatically generated** by `provision generate-docs`.\n")
	b.WriteString("Do not edit it manually; update the registry in internal/catalog instead.\n\n")

	for _, ctx := range contexts(tools) {
		b.WriteString("## " + ctx + "\n\n")
		b.WriteString("| Software | Source | Description | Binary | PURL |\n")
		b.WriteString("| :--- | :--- | :--- | :--- | :--- |\n")

		for _, t := range tools {
			if t.Context != ctx {
				continue
			}
			binary := "*(Same)*"
			if t.Binary != "" {
				binary = "`" + t.Binary + "`"
			}
			fmt.Fprintf(&b, "| **`%s`** | `%s` | %s | %s | `%s` |\n",
				t.Name, t.Manager, t.Description, binary, purlFor(t))
		}

		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func contexts(tools []core.Tool) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tools {
		if _, ok := seen[t.Context]; ok {
			continue
		}
		seen[t.Context] = struct{}{}
		out = append(out, t.Context)
	}
	sort.Strings(out)
	return out
}

// purlFor builds the canonical package URL for a tool. Namespaced names
// (composer vendors, npm scopes) split into namespace/name.
func purlFor(t core.Tool) string {
	purlType, ok := purlTypes[t.Manager]
	if !ok {
		purlType = packageurl.TypeGeneric
	}

	namespace := ""
	name := t.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		namespace, name = name[:i], name[i+1:]
	}

	return packageurl.NewPackageURL(purlType, namespace, name, "", nil, "").ToString()
}
