package report

import "context"

// DiskInfo prints every partition and the machine-wide I/O totals. A
// partition carrying an error gets a notice in place of its usage.
func (r *Reporter) DiskInfo(ctx context.Context) error {
	r.header(SectionDisk)
	r.printf("Partitions and Usage:\n\n")

	parts, err := r.p.Partitions(ctx)
	if err != nil {
		return err
	}
	for _, part := range parts {
		r.printf("=== Device: %s ===\n", part.Device)
		r.printf("  Mountpoint:\t\t%s\n", part.Mountpoint)
		r.printf("  File system type:\t%s\n", part.Fstype)

		if part.Err != nil {
			r.printf("===[ERROR]: Unable to access disk===\n")
			r.printf("===[ERROR]: %v\n", part.Err)
			continue
		}
		if u := part.Usage; u != nil {
			r.printf("  Total size:\t\t%s\n", FormatUint(u.Total))
			r.printf("  Used:\t\t\t%s\n", FormatUint(u.Used))
			r.printf("  Free:\t\t\t%s\n", FormatUint(u.Free))
			r.printf("  Percentage:\t\t%s\n", percent(u.UsedPercent))
		}
	}

	io, err := r.p.DiskIO(ctx)
	if err != nil {
		return err
	}
	r.printf("\nTotal read:\t%s\n", FormatUint(io.ReadBytes))
	r.printf("Total write:\t%s\n", FormatUint(io.WriteBytes))
	return r.err
}
