package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-nativeview/pkg/modifier"
)

type fieldInfo struct {
	Key      string   `json:"key"`
	Aliases  []string `json:"aliases,omitempty"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Doc      string   `json:"doc,omitempty"`
}

type schemaInfo struct {
	Type   string      `json:"type"`
	Doc    string      `json:"doc,omitempty"`
	Fields []fieldInfo `json:"fields"`
}

func newModifiersCmd(c *cli) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "modifiers",
		Short: "List the modifiers and the attributes they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := describeModifiers(modifier.NewRegistry())
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			for _, info := range infos {
				fmt.Fprintf(out, "%s", info.Type)
				if info.Doc != "" {
					fmt.Fprintf(out, "  %s", info.Doc)
				}
				fmt.Fprintln(out)
				for _, f := range info.Fields {
					flag := "optional"
					if f.Required {
						flag = "required"
					}
					name := f.Key
					if len(f.Aliases) > 0 {
						name += " (" + strings.Join(f.Aliases, ", ") + ")"
					}
					fmt.Fprintf(out, "  %-28s %-7s %s\n", name, f.Kind, flag)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func describeModifiers(registry *modifier.Registry) []schemaInfo {
	schemas := registry.Schemas()
	out := make([]schemaInfo, 0, len(schemas))
	for _, schema := range schemas {
		info := schemaInfo{Type: schema.Name, Doc: schema.Doc}
		for _, f := range schema.Fields {
			info.Fields = append(info.Fields, fieldInfo{
				Key:      f.Key,
				Aliases:  f.Aliases,
				Kind:     f.Kind.String(),
				Required: f.Required,
				Doc:      f.Doc,
			})
		}
		out = append(out, info)
	}
	return out
}
