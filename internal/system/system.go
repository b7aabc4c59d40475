package system

import (
	"fmt"
	"log"
	"runtime"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit so large batches can keep
// one descriptor per worker plus report files open.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not read open-file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not raise open-file limit: %v", err)
	}
}

// Host describes the machine a batch ran on.
type Host struct {
	LogicalCPUs  int     `json:"logical_cpus" yaml:"logical_cpus"`
	PhysicalCPUs int     `json:"physical_cpus" yaml:"physical_cpus"`
	TotalMemMB   uint64  `json:"total_mem_mb" yaml:"total_mem_mb"`
	UsedMemPct   float64 `json:"used_mem_pct" yaml:"used_mem_pct"`
}

// HostStats samples CPU and memory information. Fields that cannot be read
// are left at zero; LogicalCPUs falls back to runtime.NumCPU.
func HostStats() Host {
	h := Host{LogicalCPUs: runtime.NumCPU()}

	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCPUs = n
	}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCPUs = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		h.TotalMemMB = vm.Total / (1024 * 1024)
		h.UsedMemPct = vm.UsedPercent
	}
	return h
}

func (h Host) String() string {
	return fmt.Sprintf("cpus=%d/%d mem=%dMB used=%.1f%%", h.PhysicalCPUs, h.LogicalCPUs, h.TotalMemMB, h.UsedMemPct)
}
