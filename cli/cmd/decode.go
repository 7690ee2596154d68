package cmd

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/telhawk-systems/telhawk-audit/cli/internal/client"
	"github.com/telhawk-systems/telhawk-audit/cli/pkg/output"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit/wire"
)

const maxLineBytes = 4 << 20

var errFieldFailures = errors.New("one or more fields failed to decode")

var decodeCmd = &cobra.Command{
	Use:   "decode [file...]",
	Short: "Decode audit record envelopes",
	Long: `Decode newline-delimited JSON record envelopes read from files or stdin.

Each line is an envelope: {"id": "...", "type": 1300, "fields": [{"name": "...", "value": "..."}]}.
Use "type_name" instead of "type" to give a canonical name or UNKNOWN[n].`,
	Example: `  thawk-audit decode records.jsonl
  cat records.jsonl | thawk-audit decode -o json
  thawk-audit decode --remote http://localhost:8090 records.jsonl`,
	RunE: runDecode,
}

// decodeResult is the structured output of the decode command.
type decodeResult struct {
	Records []client.DecodedRecord `json:"records" yaml:"records"`
	Errors  []client.ItemError     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	policyFlag, _ := cmd.Flags().GetString("policy")
	remote, _ := cmd.Flags().GetString("remote")
	failOnError, _ := cmd.Flags().GetBool("fail-on-error")

	envelopes, lineErrs, err := readEnvelopes(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var res *decodeResult
	if remote != "" {
		res, err = decodeRemote(cmd, remote, envelopes)
	} else {
		res, err = decodeLocal(policyFlag, envelopes)
	}
	if err != nil {
		return err
	}
	res.Errors = append(lineErrs, res.Errors...)

	w := cmd.OutOrStdout()
	handled, err := output.Structured(w, outputFormat(cmd), res)
	if err != nil {
		return err
	}
	if !handled {
		renderRecords(w, res.Records)
	}

	failed := printSummary(cmd.ErrOrStderr(), res)
	if failOnError && (failed > 0 || len(res.Errors) > 0) {
		return errFieldFailures
	}
	return nil
}

// envelopeLine is an envelope with the input line it came from.
type envelopeLine struct {
	line int
	env  wire.Envelope
}

func readEnvelopes(stdin io.Reader, files []string) ([]envelopeLine, []client.ItemError, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}

	in := &envelopeReader{}
	for _, name := range files {
		if name == "-" {
			if err := in.scan(stdin); err != nil {
				return nil, nil, fmt.Errorf("read stdin: %w", err)
			}
			continue
		}
		if err := in.scanFile(name); err != nil {
			return nil, nil, err
		}
	}
	return in.envelopes, in.errs, nil
}

// envelopeReader accumulates envelopes across inputs. Line numbers run on
// across files.
type envelopeReader struct {
	line      int
	envelopes []envelopeLine
	errs      []client.ItemError
}

func (er *envelopeReader) scanFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if err := er.scan(f); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

func (er *envelopeReader) scan(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		er.line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		env, err := wire.Unmarshal(text)
		if err != nil {
			er.errs = append(er.errs, client.ItemError{Index: er.line, Message: err.Error()})
			continue
		}
		er.envelopes = append(er.envelopes, envelopeLine{line: er.line, env: *env})
	}
	return scanner.Err()
}

func decodeLocal(policyFlag string, envelopes []envelopeLine) (*decodeResult, error) {
	policyName := cfg.Decoder.UnknownFieldPolicy
	if policyFlag != "" {
		policyName = policyFlag
	}
	policy, err := audit.ParseFallbackPolicy(policyName)
	if err != nil {
		return nil, err
	}

	decoder := audit.NewDecoder(nil, policy)
	res := &decodeResult{Records: make([]client.DecodedRecord, 0, len(envelopes))}
	for _, e := range envelopes {
		raw, err := e.env.Record(decoder.Resolver())
		if err != nil {
			res.Errors = append(res.Errors, client.ItemError{Index: e.line, Message: err.Error()})
			continue
		}
		rec := decoder.Decode(raw)
		res.Records = append(res.Records, client.DecodedRecord{ID: e.env.ID, RecordView: rec.View()})
	}
	return res, nil
}

func decodeRemote(cmd *cobra.Command, baseURL string, envelopes []envelopeLine) (*decodeResult, error) {
	batch := make([]wire.Envelope, len(envelopes))
	for i, e := range envelopes {
		batch[i] = e.env
	}

	resp, err := client.NewDecoderClient(baseURL).Decode(cmd.Context(), batch)
	if err != nil {
		return nil, err
	}

	res := &decodeResult{Records: resp.Records}
	for _, e := range resp.Errors {
		line := e.Index
		if e.Index >= 0 && e.Index < len(envelopes) {
			line = envelopes[e.Index].line
		}
		res.Errors = append(res.Errors, client.ItemError{Index: line, Message: e.Message})
	}
	return res, nil
}

func renderRecords(w io.Writer, records []client.DecodedRecord) {
	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s (%d)", rec.Type, rec.TypeID)
		if rec.ID != "" {
			title += " id=" + rec.ID
		}
		fmt.Fprintln(w, output.Heading(title))

		table := output.NewTable([]string{"NAME", "TYPE", "KIND", "VALUE"})
		for _, f := range rec.Fields {
			value := fmt.Sprint(f.Value)
			quoted := false
			if f.ValueB64 != "" {
				if b, err := base64.StdEncoding.DecodeString(f.ValueB64); err == nil {
					value, quoted = strconv.Quote(string(b)), true
				}
			}
			if f.Error != "" {
				if !quoted {
					value = strconv.Quote(value)
				}
				value = output.Highlight(fmt.Sprintf("%s (%s)", value, f.Error))
			}
			table.AddRow([]string{f.Name, f.Type, f.Kind, value})
		}
		table.Render(w)
	}
}

// printSummary writes a one-line summary and returns the number of failed fields.
func printSummary(w io.Writer, res *decodeResult) int {
	failedFields, failedRecords := 0, 0
	for _, rec := range res.Records {
		if rec.FailureCount > 0 {
			failedFields += rec.FailureCount
			failedRecords++
		}
	}

	line := fmt.Sprintf("%d records decoded", len(res.Records))
	switch {
	case failedFields > 0 || len(res.Errors) > 0:
		color.New(color.FgYellow).Fprintf(w, "⚠ %s, %d fields failed in %d records, %d envelopes rejected\n",
			line, failedFields, failedRecords, len(res.Errors))
		for _, e := range res.Errors {
			color.New(color.FgRed).Fprintf(w, "  line %d: %s\n", e.Index, e.Message)
		}
	default:
		color.New(color.FgGreen).Fprintf(w, "✓ %s\n", line)
	}
	return failedFields
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().String("policy", "", "unknown field policy: encoded or unknown (default from config)")
	decodeCmd.Flags().String("remote", "", "decode through the decoder service at this URL")
	decodeCmd.Flags().Bool("fail-on-error", false, "exit non-zero when any field or envelope fails")
}
