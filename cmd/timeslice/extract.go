// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/timeslice/internal/extract"
	"github.com/pdiddy/timeslice/internal/report"
	"github.com/pdiddy/timeslice/internal/sheet"
	"github.com/pdiddy/timeslice/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [input.xlsx]",
	Short: "Extract time-stamped blocks from a transcript workbook",
	Long: `Extract walks the first column of the input workbook, groups the lines
under their preceding timestamp, and writes one row per block (ID, 时间,
标题, 内容) to a new workbook next to the input. With no argument it asks
for the input path interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("output", "", "output workbook path (default: input stem + suffix, next to the input)")
	extractCmd.Flags().String("suffix", types.DefaultOutputSuffix, "suffix appended to the input stem for the derived output path")
	extractCmd.Flags().Bool("trace", true, "print the per-row classification trace")
	extractCmd.Flags().String("report", "", "write a YAML run report to this path")

	viper.BindPFlag("output_suffix", extractCmd.Flags().Lookup("suffix"))
	viper.BindPFlag("trace", extractCmd.Flags().Lookup("trace"))
	viper.BindPFlag("report_path", extractCmd.Flags().Lookup("report"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		fmt.Fprint(out, "请输入原始文件路径: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading input path: %w", err)
		}
		input = line
	}
	input = cleanPath(input)

	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(out, "文件不存在: %s\n", input)
		return fmt.Errorf("input file %s: %w", input, err)
	}

	cfg := extractionConfig()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = defaultOutputPath(input, cfg.OutputSuffix)
	}

	trace := io.Discard
	if cfg.Trace {
		trace = out
	}

	summary, err := extract.Run(sheet.Reader{}, sheet.Writer{}, input, output, trace)

	if cfg.ReportPath != "" {
		if werr := report.Write(cfg.ReportPath, report.FromSummary(summary, outcomeOf(err))); werr != nil {
			fmt.Fprintf(out, "写入运行报告时出错: %v\n", werr)
		}
	}

	switch {
	case errors.Is(err, extract.ErrNoRecords):
		fmt.Fprintln(out, "\n未提取到有效数据")
		fmt.Fprintln(out, "转换失败，请检查输入文件格式")
		return err
	case err != nil:
		fmt.Fprintf(out, "\n处理文件时出错: %v\n", err)
		fmt.Fprintln(out, "转换失败，请检查输入文件格式")
		return err
	}

	printSummary(out, summary)
	printVerification(out, output)
	return nil
}

// extractionConfig resolves the run settings from viper, which layers the
// config file and TIMESLICE_* environment over the flag values.
func extractionConfig() types.ExtractionConfig {
	cfg := types.ExtractionConfig{
		OutputSuffix: viper.GetString("output_suffix"),
		Trace:        viper.GetBool("trace"),
		ReportPath:   viper.GetString("report_path"),
	}
	if cfg.OutputSuffix == "" {
		cfg.OutputSuffix = types.DefaultOutputSuffix
	}
	return cfg
}

// cleanPath trims whitespace and surrounding quotes; paths pasted from a
// file manager usually arrive quoted.
func cleanPath(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

// defaultOutputPath derives the output path from the input: same
// directory, input stem plus suffix, xlsx extension.
func defaultOutputPath(input, suffix string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+suffix+".xlsx")
}

func outcomeOf(err error) report.Outcome {
	switch {
	case err == nil:
		return report.OutcomeOK
	case errors.Is(err, extract.ErrNoRecords):
		return report.OutcomeNoRecords
	default:
		return report.OutcomeFailed
	}
}

// printSummary reports per-timestamp counts, duplicate timestamps, and
// the saved-record message after a successful write.
func printSummary(w io.Writer, s extract.Summary) {
	times := make([]string, 0, len(s.Counts))
	for ts := range s.Counts {
		times = append(times, ts)
	}
	sort.Strings(times)

	fmt.Fprintln(w, "\n各时间数据量统计:")
	for _, ts := range times {
		fmt.Fprintf(w, "%s: %d条\n", ts, s.Counts[ts])
	}

	if len(s.Duplicates) > 0 {
		fmt.Fprintln(w, "\n注意: 以下时间有重复记录:")
		fmt.Fprintln(w, strings.Join(s.Duplicates, ", "))
	}

	fmt.Fprintf(w, "\n成功保存 %d 条记录到 %s\n", s.Records, s.Output)
}

// printVerification re-reads the written workbook and reports what came
// back. A verification failure is reported on its own; the workbook
// already on disk stays valid.
func printVerification(w io.Writer, path string) {
	v, err := sheet.Verify(path)
	if err != nil {
		fmt.Fprintf(w, "验证结果时出错: %v\n", err)
		return
	}

	fmt.Fprintln(w, "\n结果文件验证:")
	fmt.Fprintf(w, "总记录数: %d\n", v.Total)

	fmt.Fprintln(w, "\n前5条记录:")
	for _, r := range v.Head {
		fmt.Fprintf(w, "%s | %s | %s | %s\n", r.ID, r.Time, r.Title, firstLine(r.Content))
	}

	fmt.Fprintln(w, "\n时间分布:")
	for _, tc := range byFrequency(v.TimeCounts) {
		fmt.Fprintf(w, "%s: %d\n", tc.time, tc.count)
	}
}

// firstLine returns the first line of s, marking truncation of multi-line
// content so head rows stay one line each.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "..."
	}
	return s
}

type timeCount struct {
	time  string
	count int
}

// byFrequency orders the time distribution most-frequent first, ties by
// time value, so the verification output is stable.
func byFrequency(counts map[string]int) []timeCount {
	list := make([]timeCount, 0, len(counts))
	for ts, n := range counts {
		list = append(list, timeCount{time: ts, count: n})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].time < list[j].time
	})
	return list
}
