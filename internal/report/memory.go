package report

import "context"

// MemoryInfo prints physical memory then swap. Without swap the zeros are
// printed as they are.
func (r *Reporter) MemoryInfo(ctx context.Context) error {
	r.header(SectionMemory)

	vm, err := r.p.Memory(ctx)
	if err != nil {
		return err
	}
	r.printf("\n=== Physical memory ===\n")
	r.printf("Total:\t\t%s\n", FormatUint(vm.Total))
	r.printf("Available:\t%s\n", FormatUint(vm.Available))
	r.printf("Used:\t\t%s\n", FormatUint(vm.Used))
	r.printf("Percentage:\t%s\n", percent(vm.UsedPercent))

	sw, err := r.p.Swap(ctx)
	if err != nil {
		return err
	}
	r.printf("\n=== Swap Memory ===\n")
	r.printf("Total:\t\t%s\n", FormatUint(sw.Total))
	r.printf("Free:\t\t%s\n", FormatUint(sw.Free))
	r.printf("Used:\t\t%s\n", FormatUint(sw.Used))
	r.printf("Percentage:\t%s\n", percent(sw.UsedPercent))
	return r.err
}
