package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"diagkit/internal/stackfilter"
)

var framesCmd = &cobra.Command{
	Use:   "frames [flags] [file]",
	Short: "Parse a trace into structured frames",
	Long:  `Frames parses stack-trace text into structured frames and dumps them as an aligned table, JSON, or msgpack. Reads stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFrames,
}

func init() {
	framesCmd.Flags().String("format", "table", "output format (table|json|msgpack)")
	framesCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

// frameRecord is the export shape of one parsed frame. Line and column
// are 1-based, matching the source text convention.
type frameRecord struct {
	Index       int    `json:"index" msgpack:"index"`
	Type        string `json:"type,omitempty" msgpack:"type,omitempty"`
	Function    string `json:"function,omitempty" msgpack:"function,omitempty"`
	Method      string `json:"method,omitempty" msgpack:"method,omitempty"`
	File        string `json:"file,omitempty" msgpack:"file,omitempty"`
	Line        int    `json:"line,omitempty" msgpack:"line,omitempty"`
	Column      int    `json:"column,omitempty" msgpack:"column,omitempty"`
	EvalOrigin  string `json:"eval_origin,omitempty" msgpack:"eval_origin,omitempty"`
	Constructor bool   `json:"constructor,omitempty" msgpack:"constructor,omitempty"`
	Async       bool   `json:"async,omitempty" msgpack:"async,omitempty"`
}

func runFrames(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "table", "json", "msgpack":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be table, json or msgpack)", format)
	}

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	records := collectFrames(string(data))

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "msgpack":
		payload, err := msgpack.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to encode frames: %w", err)
		}
		_, err = out.Write(payload)
		return err
	default:
		renderFrameTable(out, records)
		return nil
	}
}

// collectFrames parses every frame line, skipping non-frame text.
func collectFrames(text string) []frameRecord {
	var records []frameRecord
	for _, raw := range strings.Split(text, "\n") {
		frame, ok := stackfilter.ParseLine(strings.TrimSuffix(raw, "\r"))
		if !ok {
			continue
		}
		rec := frameRecord{
			Index:       len(records),
			Type:        frame.TypeName,
			Function:    frame.FunctionName,
			Method:      frame.MethodName,
			File:        frame.FileName,
			Constructor: frame.IsConstructor,
			Async:       frame.IsAsync,
		}
		if frame.Line >= 0 {
			rec.Line = frame.Line + 1
		}
		if frame.Column >= 0 {
			rec.Column = frame.Column + 1
		}
		if frame.EvalOrigin != nil {
			rec.EvalOrigin = frame.EvalOrigin.String()
		}
		records = append(records, rec)
	}
	return records
}

func renderFrameTable(out io.Writer, records []frameRecord) {
	headerStyle := lipgloss.NewStyle().Bold(true)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-4s %-40s %s", "#", "FUNCTION", "LOCATION")))
	for _, rec := range records {
		fmt.Fprintf(out, "%-4d %s %s\n", rec.Index, pad(identityOf(rec), 40), locationOf(rec))
	}
}

func identityOf(rec frameRecord) string {
	if rec.EvalOrigin != "" {
		return "eval at " + rec.EvalOrigin
	}
	var sb strings.Builder
	if rec.Async {
		sb.WriteString("async ")
	}
	if rec.Constructor {
		sb.WriteString("new ")
	}
	if rec.Type != "" {
		sb.WriteString(rec.Type + ".")
	}
	if rec.Function == "" {
		sb.WriteString("<none>")
	} else {
		sb.WriteString(rec.Function)
	}
	if rec.Method != "" {
		sb.WriteString(" [as " + rec.Method + "]")
	}
	return sb.String()
}

func locationOf(rec frameRecord) string {
	if rec.File == "" {
		return ""
	}
	loc := rec.File
	if rec.Line > 0 {
		loc += fmt.Sprintf(":%d", rec.Line)
		if rec.Column > 0 {
			loc += fmt.Sprintf(":%d", rec.Column)
		}
	}
	return loc
}

// pad right-pads to a display width, aware of wide runes.
func pad(value string, width int) string {
	w := runewidth.StringWidth(value)
	if w >= width {
		return runewidth.Truncate(value, width, "...")
	}
	return value + strings.Repeat(" ", width-w)
}
