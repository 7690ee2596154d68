package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/telhawk-systems/telhawk-audit/cli/pkg/output"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up message types and field types",
}

// eventInfo describes one message type.
type eventInfo struct {
	ID        uint32 `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Known     bool   `json:"known" yaml:"known"`
	Multipart bool   `json:"multipart" yaml:"multipart"`
}

// fieldInfo describes one field name.
type fieldInfo struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Known bool   `json:"known" yaml:"known"`
}

var lookupEventCmd = &cobra.Command{
	Use:   "event <id|name>...",
	Short: "Resolve message type ids and names",
	Example: `  thawk-audit lookup event 1300
  thawk-audit lookup event SYSCALL UNKNOWN[9999]`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := audit.NewResolver(nil)

		infos := make([]eventInfo, 0, len(args))
		for _, ref := range args {
			id, err := resolveEventRef(resolver, ref)
			if err != nil {
				return err
			}
			infos = append(infos, describeEvent(resolver, id))
		}
		return renderEvents(cmd, infos)
	},
}

var lookupEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List all registered message types",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := audit.NewResolver(nil)
		events := audit.DefaultTables().Events()

		infos := make([]eventInfo, len(events))
		for i, e := range events {
			infos[i] = describeEvent(resolver, e.ID)
		}
		return renderEvents(cmd, infos)
	},
}

var lookupFieldCmd = &cobra.Command{
	Use:     "field <name>...",
	Short:   "Show the declared type of field names",
	Example: `  thawk-audit lookup field mode exit comm
  thawk-audit lookup field --event EXECVE a0 a0_len`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		classifier := audit.NewClassifier(nil, audit.FallbackEncoded)
		classify := classifier.Classify
		if ref, _ := cmd.Flags().GetString("event"); ref != "" {
			id, err := resolveEventRef(audit.NewResolver(nil), ref)
			if err != nil {
				return err
			}
			classify = func(name []byte) (audit.FieldType, bool) {
				return classifier.ClassifyIn(id, name)
			}
		}

		infos := make([]fieldInfo, len(args))
		for i, name := range args {
			ft, known := classify([]byte(name))
			infos[i] = fieldInfo{Name: name, Type: ft.String(), Known: known}
		}
		return renderFields(cmd, infos)
	},
}

var lookupFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List all field names with a declared type",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := audit.DefaultTables().Fields()

		infos := make([]fieldInfo, len(fields))
		for i, f := range fields {
			infos[i] = fieldInfo{Name: f.Name, Type: f.Type.String(), Known: true}
		}
		return renderFields(cmd, infos)
	},
}

// resolveEventRef accepts a decimal id, a canonical name or UNKNOWN[n].
func resolveEventRef(r *audit.Resolver, ref string) (uint32, error) {
	if n, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return uint32(n), nil
	}
	id, err := r.Parse(ref)
	if err != nil {
		return 0, fmt.Errorf("lookup %q: %w", ref, err)
	}
	return id, nil
}

func describeEvent(r *audit.Resolver, id uint32) eventInfo {
	return eventInfo{
		ID:        id,
		Name:      r.Name(id),
		Known:     r.Known(id),
		Multipart: audit.IsMultipart(id),
	}
}

func renderEvents(cmd *cobra.Command, infos []eventInfo) error {
	w := cmd.OutOrStdout()
	if handled, err := output.Structured(w, outputFormat(cmd), infos); handled || err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "NAME", "KNOWN", "MULTIPART"})
	for _, e := range infos {
		table.AddRow([]string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Name,
			strconv.FormatBool(e.Known),
			strconv.FormatBool(e.Multipart),
		})
	}
	table.Render(w)
	return nil
}

func renderFields(cmd *cobra.Command, infos []fieldInfo) error {
	w := cmd.OutOrStdout()
	if handled, err := output.Structured(w, outputFormat(cmd), infos); handled || err != nil {
		return err
	}

	table := output.NewTable([]string{"NAME", "TYPE", "KNOWN"})
	for _, f := range infos {
		table.AddRow([]string{f.Name, f.Type, strconv.FormatBool(f.Known)})
	}
	table.Render(w)
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupEventCmd)
	lookupCmd.AddCommand(lookupEventsCmd)
	lookupCmd.AddCommand(lookupFieldCmd)
	lookupCmd.AddCommand(lookupFieldsCmd)

	lookupFieldCmd.Flags().String("event", "", "Classify names as fields of this message type (id or name)")
}
