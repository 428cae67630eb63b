package report

import "context"

func (r *Reporter) CPUInfo(ctx context.Context) error {
	r.header(SectionCPU)
	c, err := r.p.CPU(ctx)
	if err != nil {
		return err
	}

	r.printf("Physical cores:\t\t%d\n", c.PhysicalCores)
	r.printf("Total cores:\t\t%d\n", c.LogicalCores)

	r.printf("Max frequency:\t\t%.2fMhz\n", c.MaxMHz)
	r.printf("Min frequency:\t\t%.2fMhz\n", c.MinMHz)
	r.printf("Current frequency:\t%.2fMhz\n", c.CurrentMHz)

	r.printf("CPU Usage Per Core:\n")
	for i, p := range c.PerCorePercent {
		r.printf("  Core %d: %s\n", i, percent(p))
	}
	r.printf("Total CPU usage:\t%s\n", percent(c.TotalPercent))
	return r.err
}
