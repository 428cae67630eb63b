package report

import "context"

const bootTimeLayout = "01/02/2006, 15:04:05"

func (r *Reporter) SystemInfo(ctx context.Context) error {
	r.header(SectionSystem)
	id, err := r.p.Identity(ctx)
	if err != nil {
		return err
	}
	r.printf("System:\t\t%s\n", id.System)
	r.printf("Node Name:\t%s\n", id.NodeName)
	r.printf("Release:\t%s\n", id.Release)
	r.printf("Version:\t%s\n", id.Version)
	r.printf("Machine:\t%s\n", id.Machine)
	r.printf("Processor:\t%s\n", id.Processor)
	return r.err
}

// BootTime prints the boot timestamp in local time.
func (r *Reporter) BootTime(ctx context.Context) error {
	r.header(SectionBoot)
	bt, err := r.p.BootTime(ctx)
	if err != nil {
		return err
	}
	r.printf("Boot Time: %s\n", bt.Local().Format(bootTimeLayout))
	return r.err
}
