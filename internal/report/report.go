package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"sysreport/internal/logger"
	"sysreport/internal/sysinfo"
)

const (
	EndMarker = "===End Output==="
	barWidth  = 40
)

// Section titles in report order.
const (
	SectionSystem  = "System Information"
	SectionBoot    = "Boot Time"
	SectionCPU     = "CPU Info"
	SectionMemory  = "Memory Information"
	SectionDisk    = "Disk Information"
	SectionNetwork = "Network Information"
)

// Reporter prints a full system report built from a Provider.
type Reporter struct {
	w   io.Writer
	p   sysinfo.Provider
	err error
}

func New(w io.Writer, p sysinfo.Provider) *Reporter {
	return &Reporter{w: w, p: p}
}

type section struct {
	title string
	print func(context.Context) error
}

// Run prints every section in order followed by the end marker. The first
// failing section stops the run; its error is returned.
func (r *Reporter) Run(ctx context.Context) error {
	sections := []section{
		{SectionSystem, r.SystemInfo},
		{SectionBoot, r.BootTime},
		{SectionCPU, r.CPUInfo},
		{SectionMemory, r.MemoryInfo},
		{SectionDisk, r.DiskInfo},
		{SectionNetwork, r.NetworkInfo},
	}

	for _, s := range sections {
		start := time.Now()
		if err := s.print(ctx); err != nil {
			logger.Report.Error().Err(err).Str("section", s.title).Msg("Section failed")
			return fmt.Errorf("%s: %w", strings.ToLower(s.title), err)
		}
		logger.Report.Debug().Str("section", s.title).Dur("duration", time.Since(start)).Msg("Section printed")
	}

	r.printf("\n\t%s\n\n", EndMarker)
	return r.err
}

func (r *Reporter) header(title string) {
	bar := strings.Repeat("=", barWidth)
	r.printf("\n\n%s %s %s\n", bar, title, bar)
}

// printf writes to the report, remembering the first write error.
func (r *Reporter) printf(format string, a ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, a...)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
